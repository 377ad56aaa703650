package similarity

import (
	"context"
	"log/slog"

	"github.com/takatori/wnsim/internal/wordnet"
	"golang.org/x/sync/errgroup"
)

type Pair struct {
	SynSet1 *wordnet.SynSet
	SynSet2 *wordnet.SynSet
}

// Batch scores pairs concurrently with at most workers goroutines. Scores
// are returned in the order of pairs. The first failing pair cancels the
// remaining work.
func Batch(ctx context.Context, sim Similarity, pairs []Pair, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = 1
	}
	scores := make([]float64, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, err := sim.ComputeSimilarity(p.SynSet1, p.SynSet2)
			if err != nil {
				return err
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("batch similarity computed", "pairs", len(pairs), "workers", workers)
	return scores, nil
}
