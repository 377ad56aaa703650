package similarity_test

import (
	"context"
	"testing"

	"github.com/morikuni/failure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takatori/wnsim/internal/errors"
	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet/wordnettest"
)

func TestBatch(t *testing.T) {
	wn := wordnettest.Corpus(wordnettest.LegacyAncestors)
	ids := [][2]string{
		{wordnettest.Kavun, wordnettest.Karpuz},
		{wordnettest.Kalem, wordnettest.Silgi},
		{wordnettest.Bardak, wordnettest.Sandalye},
	}
	var pairs []similarity.Pair
	for _, p := range ids {
		pairs = append(pairs, similarity.Pair{SynSet1: synset(t, wn, p[0]), SynSet2: synset(t, wn, p[1])})
	}

	for _, workers := range []int{0, 1, 2, 8} {
		scores, err := similarity.Batch(context.Background(), similarity.NewSimilarityPath(wn), pairs, workers)
		require.NoError(t, err)
		assert.Equal(t, []float64{32, 15, 13}, scores, "workers=%d", workers)
	}
}

func TestBatch_Error(t *testing.T) {
	wn := wordnettest.Corpus(wordnettest.LegacyAncestors)
	pairs := []similarity.Pair{
		{SynSet1: synset(t, wn, wordnettest.Kavun), SynSet2: synset(t, wn, wordnettest.Karpuz)},
		{SynSet1: synset(t, wn, wordnettest.Bardak), SynSet2: synset(t, wn, wordnettest.Sandalye)},
	}

	_, err := similarity.Batch(context.Background(), similarity.NewResnik(wn, informationContents()), pairs, 2)
	require.Error(t, err)
	assert.True(t, failure.Is(err, errors.ErrIncompleteInformationContent))
}

func TestBatch_Cancelled(t *testing.T) {
	wn := wordnettest.Corpus(wordnettest.LegacyAncestors)
	pairs := []similarity.Pair{
		{SynSet1: synset(t, wn, wordnettest.Kavun), SynSet2: synset(t, wn, wordnettest.Karpuz)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := similarity.Batch(ctx, similarity.NewLCH(wn), pairs, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatch_Empty(t *testing.T) {
	wn := wordnettest.Corpus(wordnettest.LegacyAncestors)
	scores, err := similarity.Batch(context.Background(), similarity.NewLCH(wn), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, scores)
}
