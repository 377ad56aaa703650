package similarity

import (
	"github.com/morikuni/failure/v2"
	"github.com/takatori/wnsim/internal/errors"
	"github.com/takatori/wnsim/internal/wordnet"
)

// InformationContents maps synset ids to precomputed information content.
type InformationContents map[string]float64

// Lookup returns the IC of id, failing with
// ErrIncompleteInformationContent when the table has no entry.
func (ic InformationContents) Lookup(id string) (float64, error) {
	v, ok := ic[id]
	if !ok {
		return 0, failure.New(
			errors.ErrIncompleteInformationContent,
			failure.Field(failure.Message("no information content for synset")),
			failure.Context{
				"synset": id,
			},
		)
	}
	return v, nil
}

// lookupAll resolves the IC of the two synsets and their subsumer.
func (ic InformationContents) lookupAll(graph wordnet.Graph, synSet1, synSet2 *wordnet.SynSet) (ic1, ic2, lcs float64, err error) {
	path1, path2 := rootPaths(graph, synSet1, synSet2)
	if lcs, err = ic.Lookup(wordnet.FindLCSID(path1, path2)); err != nil {
		return
	}
	if ic1, err = ic.Lookup(synSet1.ID); err != nil {
		return
	}
	ic2, err = ic.Lookup(synSet2.ID)
	return
}

// Resnik scores IC(lcs).
type Resnik struct {
	graph wordnet.Graph
	ic    InformationContents
}

func NewResnik(graph wordnet.Graph, ic InformationContents) *Resnik {
	return &Resnik{graph: graph, ic: ic}
}

func (r *Resnik) ComputeSimilarity(synSet1, synSet2 *wordnet.SynSet) (float64, error) {
	path1, path2 := rootPaths(r.graph, synSet1, synSet2)
	return r.ic.Lookup(wordnet.FindLCSID(path1, path2))
}

// JCN is the Jiang-Conrath metric, 1 / (IC(s1) + IC(s2) - 2*IC(lcs)).
type JCN struct {
	graph wordnet.Graph
	ic    InformationContents
}

func NewJCN(graph wordnet.Graph, ic InformationContents) *JCN {
	return &JCN{graph: graph, ic: ic}
}

func (j *JCN) ComputeSimilarity(synSet1, synSet2 *wordnet.SynSet) (float64, error) {
	ic1, ic2, lcs, err := j.ic.lookupAll(j.graph, synSet1, synSet2)
	if err != nil {
		return 0, err
	}
	return 1 / (ic1 + ic2 - 2*lcs), nil
}

// Lin scores 2*IC(lcs) / (IC(s1) + IC(s2)).
type Lin struct {
	graph wordnet.Graph
	ic    InformationContents
}

func NewLin(graph wordnet.Graph, ic InformationContents) *Lin {
	return &Lin{graph: graph, ic: ic}
}

func (l *Lin) ComputeSimilarity(synSet1, synSet2 *wordnet.SynSet) (float64, error) {
	ic1, ic2, lcs, err := l.ic.lookupAll(l.graph, synSet1, synSet2)
	if err != nil {
		return 0, err
	}
	return (2 * lcs) / (ic1 + ic2), nil
}
