// Package wordnettest builds small hypernym graphs for tests.
package wordnettest

import (
	"fmt"

	"github.com/takatori/wnsim/internal/wordnet"
)

// Synset ids of the reference pairs used across the test suites.
const (
	Kavun    = "TUR10-0656390"
	Karpuz   = "TUR10-0600460"
	Kalem    = "TUR10-0412120"
	Silgi    = "TUR10-0755370"
	Bardak   = "TUR10-0195110"
	Sandalye = "TUR10-0822980"
	Varlik   = "TUR10-0814560"
)

// Number of ancestors above the subsumer of Kavun and Karpuz. The two
// releases of the Turkish resource differ only in that depth.
const (
	LegacyAncestors  = 14
	CurrentAncestors = 17
)

type Builder struct {
	WordNet *wordnet.WordNet
}

func NewBuilder() *Builder {
	return &Builder{WordNet: wordnet.New()}
}

// SynSet returns the synset with id, creating it when missing, and adds the
// given literal names with sense 1.
func (b *Builder) SynSet(id string, literals ...string) *wordnet.SynSet {
	s, ok := b.WordNet.SynSetWithID(id)
	if !ok {
		s = wordnet.NewSynSet(id)
		s.Pos = wordnet.Noun
		b.WordNet.AddSynSet(s)
	}
	for _, name := range literals {
		l := &wordnet.Literal{Name: name, Sense: 1}
		s.AddLiteral(l)
		b.WordNet.AddLiteral(l)
	}
	return s
}

// Relate appends a semantic relation from -> to.
func (b *Builder) Relate(from, to string, t wordnet.SemanticRelationType) {
	b.SynSet(from).AddRelation(wordnet.NewSemanticRelation(to, t))
	b.SynSet(to)
}

// Chain links every id to the next one with a HYPERNYM relation.
func (b *Builder) Chain(ids ...string) {
	for i := 0; i+1 < len(ids); i++ {
		b.Relate(ids[i], ids[i+1], wordnet.Hypernym)
	}
	if len(ids) == 1 {
		b.SynSet(ids[0])
	}
}

// IDs returns n synthetic ids with the given prefix.
func IDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s-%02d", prefix, i+1)
	}
	return ids
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Corpus builds the reference graph:
//
//	Kavun  -> meyve-01 -> kavungiller -> anc-01 ... anc-N
//	Karpuz -> kavungiller
//	Kalem  -> k-01..k-06 -> yazi -> y-01..y-06
//	Silgi  -> s-01..s-06 -> yazi
//	Bardak -> b-01..b-10 -> esya -> e-01, e-02
//	Sandalye -> m-01..m-04 -> esya
//	Varlik (no hypernym)
//
// ancestors is N, the depth above kavungiller.
func Corpus(ancestors int) *wordnet.WordNet {
	b := NewBuilder()
	b.SynSet(Kavun, "kavun")
	b.SynSet(Karpuz, "karpuz")
	b.SynSet(Kalem, "kalem")
	b.SynSet(Silgi, "silgi")
	b.SynSet(Bardak, "bardak")
	b.SynSet(Sandalye, "sandalye")
	b.SynSet(Varlik, "varlık")
	b.SynSet("FIX-kavungiller", "kavungiller")
	b.SynSet("FIX-yazi", "yazı gereci")
	b.SynSet("FIX-esya", "eşya")

	above := IDs("FIX-anc", ancestors)
	b.Chain(concat([]string{Kavun}, IDs("FIX-meyve", 1), []string{"FIX-kavungiller"}, above)...)
	b.Chain(concat([]string{Karpuz, "FIX-kavungiller"})...)

	yazi := IDs("FIX-y", 6)
	b.Chain(concat([]string{Kalem}, IDs("FIX-k", 6), []string{"FIX-yazi"}, yazi)...)
	b.Chain(concat([]string{Silgi}, IDs("FIX-s", 6), []string{"FIX-yazi"})...)

	esya := IDs("FIX-e", 2)
	b.Chain(concat([]string{Bardak}, IDs("FIX-b", 10), []string{"FIX-esya"}, esya)...)
	b.Chain(concat([]string{Sandalye}, IDs("FIX-m", 4), []string{"FIX-esya"})...)

	// Varlik only has outgoing hyponyms; they must not be followed upwards.
	b.Relate(Varlik, "FIX-esya", wordnet.Hyponym)
	b.Relate(Varlik, "FIX-yazi", wordnet.Hyponym)

	return b.WordNet
}
