package ic

import (
	"context"
	"log/slog"

	"github.com/morikuni/failure/v2"
	"github.com/takatori/wnsim/internal"
	"github.com/takatori/wnsim/internal/errors"
	"github.com/takatori/wnsim/internal/infra"
	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet"
)

// Resolve loads the table selected by config.ICSource. It returns nil for
// ICSourceNone; IC-based metrics are then rejected at construction.
func Resolve(ctx context.Context, config *internal.Config, wn *wordnet.WordNet) (similarity.InformationContents, error) {
	slog.Info("resolving information content", "source", config.ICSource)

	switch config.ICSource {
	case internal.ICSourceNone, "":
		return nil, nil
	case internal.ICSourceIntrinsic:
		return Intrinsic(wn), nil
	case internal.ICSourceSQLite:
		store, err := Open(config.ICDBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load(ctx)
	case internal.ICSourceRemote:
		if config.ICUrl == "" {
			return nil, failure.New(
				errors.ErrInvalidArgument,
				failure.Field(failure.Message("IC_URL is required for the remote source")),
			)
		}
		return FetchRemote(ctx, infra.NewHttpClient(config.HTTPTimeout), config.ICUrl)
	}
	return nil, failure.New(
		errors.ErrInvalidArgument,
		failure.Field(failure.Message("unknown information content source")),
		failure.Context{
			"source": string(config.ICSource),
		},
	)
}
