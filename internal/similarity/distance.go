package similarity

import (
	"math"

	"github.com/takatori/wnsim/internal/wordnet"
)

// SimilarityPath scores 2*maxDepth - pathLength.
type SimilarityPath struct {
	graph wordnet.Graph
}

func NewSimilarityPath(graph wordnet.Graph) *SimilarityPath {
	return &SimilarityPath{graph: graph}
}

func (s *SimilarityPath) ComputeSimilarity(synSet1, synSet2 *wordnet.SynSet) (float64, error) {
	// Depth is needed as well, so both synsets are walked all the way up.
	path1, path2 := rootPaths(s.graph, synSet1, synSet2)
	pathLength := wordnet.FindPathLength(path1, path2)
	maxDepth := max(len(path1), len(path2))
	return float64(2*maxDepth - pathLength), nil
}

// LCH is the Leacock-Chodorow metric, -ln(pathLength / (2*maxDepth)).
type LCH struct {
	graph wordnet.Graph
}

func NewLCH(graph wordnet.Graph) *LCH {
	return &LCH{graph: graph}
}

func (l *LCH) ComputeSimilarity(synSet1, synSet2 *wordnet.SynSet) (float64, error) {
	path1, path2 := rootPaths(l.graph, synSet1, synSet2)
	pathLength := float64(wordnet.FindPathLength(path1, path2))
	maxDepth := float64(max(len(path1), len(path2)))
	return -math.Log(pathLength / (2 * maxDepth)), nil
}

// WuPalmer scores 2*lcsDepth / (len(path1) + len(path2)).
type WuPalmer struct {
	graph wordnet.Graph
}

func NewWuPalmer(graph wordnet.Graph) *WuPalmer {
	return &WuPalmer{graph: graph}
}

func (w *WuPalmer) ComputeSimilarity(synSet1, synSet2 *wordnet.SynSet) (float64, error) {
	path1, path2 := rootPaths(w.graph, synSet1, synSet2)
	lcsDepth := float64(wordnet.FindLCSDepth(path1, path2))
	return 2 * lcsDepth / float64(len(path1)+len(path2)), nil
}
