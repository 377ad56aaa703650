package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet"
)

type SimilarityParams struct {
	Metric  similarity.Metric `json:"metric" validate:"required"`
	SynSet1 string            `json:"synset1" validate:"required"`
	SynSet2 string            `json:"synset2" validate:"required"`
}

type SimilarityResponse struct {
	Metric  similarity.Metric `json:"metric"`
	SynSet1 string            `json:"synset1"`
	SynSet2 string            `json:"synset2"`
	Score   similarity.Score  `json:"score"`
}

type PairParams struct {
	SynSet1 string `json:"synset1"`
	SynSet2 string `json:"synset2"`
}

type BatchSimilarityParams struct {
	Metric similarity.Metric `json:"metric" validate:"required"`
	Pairs  []PairParams      `json:"pairs" validate:"required,dive,required"`
}

type BatchSimilarityResponse struct {
	Metric similarity.Metric    `json:"metric"`
	Scores []SimilarityResponse `json:"scores"`
}

// NewSimilarityHandler scores one synset pair with the requested metric.
func NewSimilarityHandler(wn *wordnet.WordNet, ic similarity.InformationContents) func(echo.Context) error {
	return func(c echo.Context) error {
		var params SimilarityParams
		if err := c.Bind(&params); err != nil {
			return errorJSON(c, invalidRequest(err))
		}

		sim, err := similarity.New(params.Metric, wn, ic)
		if err != nil {
			return errorJSON(c, err)
		}
		pair, err := resolvePair(wn, PairParams{SynSet1: params.SynSet1, SynSet2: params.SynSet2})
		if err != nil {
			return errorJSON(c, err)
		}

		score, err := sim.ComputeSimilarity(pair.SynSet1, pair.SynSet2)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, SimilarityResponse{
			Metric:  params.Metric,
			SynSet1: params.SynSet1,
			SynSet2: params.SynSet2,
			Score:   similarity.Score(score),
		})
	}
}

// NewBatchSimilarityHandler scores many pairs concurrently.
func NewBatchSimilarityHandler(wn *wordnet.WordNet, ic similarity.InformationContents, workers int) func(echo.Context) error {
	return func(c echo.Context) error {
		var params BatchSimilarityParams
		if err := c.Bind(&params); err != nil {
			return errorJSON(c, invalidRequest(err))
		}

		sim, err := similarity.New(params.Metric, wn, ic)
		if err != nil {
			return errorJSON(c, err)
		}
		pairs := make([]similarity.Pair, 0, len(params.Pairs))
		for _, p := range params.Pairs {
			pair, err := resolvePair(wn, p)
			if err != nil {
				return errorJSON(c, err)
			}
			pairs = append(pairs, pair)
		}

		scores, err := similarity.Batch(c.Request().Context(), sim, pairs, workers)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, BatchSimilarityResponse{
			Metric: params.Metric,
			Scores: lo.Map(params.Pairs, func(p PairParams, i int) SimilarityResponse {
				return SimilarityResponse{Metric: params.Metric, SynSet1: p.SynSet1, SynSet2: p.SynSet2, Score: similarity.Score(scores[i])}
			}),
		})
	}
}

func resolvePair(wn *wordnet.WordNet, p PairParams) (similarity.Pair, error) {
	s1, ok := wn.SynSetWithID(p.SynSet1)
	if !ok {
		return similarity.Pair{}, synSetNotFound(p.SynSet1)
	}
	s2, ok := wn.SynSetWithID(p.SynSet2)
	if !ok {
		return similarity.Pair{}, synSetNotFound(p.SynSet2)
	}
	return similarity.Pair{SynSet1: s1, SynSet2: s2}, nil
}
