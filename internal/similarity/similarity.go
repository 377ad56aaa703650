// Package similarity scores pairs of synsets with tree-distance and
// information-content metrics. Every metric reads the graph it was built
// with and never writes to it, so one instance can serve many goroutines.
//
// Results are undefined for synsets in disconnected subgraphs: the path
// length -1 and the missing subsumer flow into the formulas unchanged.
package similarity

import (
	"fmt"

	"github.com/morikuni/failure/v2"
	"github.com/takatori/wnsim/internal/errors"
	"github.com/takatori/wnsim/internal/wordnet"
)

type Similarity interface {
	ComputeSimilarity(synSet1, synSet2 *wordnet.SynSet) (float64, error)
}

type Metric string

const (
	MetricPath     Metric = "path"
	MetricLCH      Metric = "lch"
	MetricWuPalmer Metric = "wupalmer"
	MetricResnik   Metric = "resnik"
	MetricJCN      Metric = "jcn"
	MetricLin      Metric = "lin"
)

var Metrics = []Metric{MetricPath, MetricLCH, MetricWuPalmer, MetricResnik, MetricJCN, MetricLin}

// NeedsInformationContent reports whether the metric reads an IC table.
func (m Metric) NeedsInformationContent() bool {
	switch m {
	case MetricResnik, MetricJCN, MetricLin:
		return true
	}
	return false
}

// New builds the metric named m. ic may be nil for metrics that do not use
// information content.
func New(m Metric, graph wordnet.Graph, ic InformationContents) (Similarity, error) {
	if m.NeedsInformationContent() && ic == nil {
		return nil, failure.New(
			errors.ErrInvalidArgument,
			failure.Field(failure.Message("metric requires an information content table")),
			failure.Context{
				"metric": string(m),
			},
		)
	}
	switch m {
	case MetricPath:
		return NewSimilarityPath(graph), nil
	case MetricLCH:
		return NewLCH(graph), nil
	case MetricWuPalmer:
		return NewWuPalmer(graph), nil
	case MetricResnik:
		return NewResnik(graph, ic), nil
	case MetricJCN:
		return NewJCN(graph, ic), nil
	case MetricLin:
		return NewLin(graph, ic), nil
	}
	return nil, failure.New(
		errors.ErrInvalidArgument,
		failure.Field(failure.Message(fmt.Sprintf("unknown metric %q", m))),
		failure.Context{
			"metric": string(m),
		},
	)
}

// rootPaths percolates both synsets to their roots.
func rootPaths(graph wordnet.Graph, synSet1, synSet2 *wordnet.SynSet) ([]string, []string) {
	return wordnet.FindPathToRoot(graph, synSet1), wordnet.FindPathToRoot(graph, synSet2)
}
