package ic

import (
	"context"
	"log/slog"

	"github.com/takatori/wnsim/internal/infra"
	"github.com/takatori/wnsim/internal/similarity"
)

// FetchRemote downloads a table published as a JSON object of
// synset id to information content.
func FetchRemote(ctx context.Context, client *infra.HttpClient, url string) (similarity.InformationContents, error) {
	var table map[string]float64
	err := client.Get(
		ctx,
		infra.Request{
			Url: url,
		},
		&table,
	)
	if err != nil {
		return nil, err
	}
	slog.Info("information content fetched", "url", url, "entries", len(table))
	return similarity.InformationContents(table), nil
}
