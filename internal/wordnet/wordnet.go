package wordnet

import (
	"sort"

	"github.com/samber/lo"
)

// Graph resolves synset ids. It is the only capability the tree-distance
// functions need from a lexical resource.
type Graph interface {
	SynSetWithID(id string) (*SynSet, bool)
}

// WordNet is an in-memory lexical resource. It is built once and then only
// read, so concurrent readers need no locking.
type WordNet struct {
	synSets      map[string]*SynSet
	literals     map[string][]*Literal
	interlingual map[string][]*SynSet
}

func New() *WordNet {
	return &WordNet{
		synSets:      make(map[string]*SynSet),
		literals:     make(map[string][]*Literal),
		interlingual: make(map[string][]*SynSet),
	}
}

// AddSynSet registers a synset together with its literals and interlingual
// links. A synset with the same id replaces the previous one.
func (w *WordNet) AddSynSet(s *SynSet) {
	w.synSets[s.ID] = s
	for _, l := range s.Literals {
		w.AddLiteral(l)
	}
	for _, r := range s.Relations {
		if r.Kind == Interlingual {
			w.interlingual[r.Name] = append(w.interlingual[r.Name], s)
		}
	}
}

func (w *WordNet) RemoveSynSet(s *SynSet) {
	delete(w.synSets, s.ID)
}

func (w *WordNet) AddLiteral(l *Literal) {
	w.literals[l.Name] = append(w.literals[l.Name], l)
}

func (w *WordNet) SynSetWithID(id string) (*SynSet, bool) {
	s, ok := w.synSets[id]
	return s, ok
}

// SynSetWithLiteral returns the synset holding the given literal sense.
func (w *WordNet) SynSetWithLiteral(name string, sense int) (*SynSet, bool) {
	for _, l := range w.literals[name] {
		if l.Sense == sense {
			return w.SynSetWithID(l.SynSetID)
		}
	}
	return nil, false
}

func (w *WordNet) LiteralsWithName(name string) []*Literal {
	return w.literals[name]
}

// SynSetsWithLiteral returns every synset one of whose literals is name, in
// the order the literals were indexed.
func (w *WordNet) SynSetsWithLiteral(name string) []*SynSet {
	var result []*SynSet
	for _, l := range w.literals[name] {
		if s, ok := w.SynSetWithID(l.SynSetID); ok {
			result = append(result, s)
		}
	}
	return result
}

func (w *WordNet) NumberOfSynSetsWithLiteral(name string) int {
	return len(w.literals[name])
}

func (w *WordNet) SynSetsWithPartOfSpeech(pos Pos) []*SynSet {
	return lo.Filter(w.SynSetList(), func(s *SynSet, _ int) bool {
		return s.Pos == pos
	})
}

// Interlingual returns the synsets carrying an ILR to the given foreign id.
func (w *WordNet) Interlingual(id string) []*SynSet {
	return w.interlingual[id]
}

// SynSetList returns all synsets ordered by id.
func (w *WordNet) SynSetList() []*SynSet {
	ids := lo.Keys(w.synSets)
	sort.Strings(ids)
	return lo.Map(ids, func(id string, _ int) *SynSet { return w.synSets[id] })
}

// LiteralList returns the distinct literal names in sorted order.
func (w *WordNet) LiteralList() []string {
	names := lo.Keys(w.literals)
	sort.Strings(names)
	return names
}

func (w *WordNet) Size() int {
	return len(w.synSets)
}

// AddReverseRelation adds to the target of r the inverse relation pointing
// back at s, unless it is already present or r has no inverse.
func (w *WordNet) AddReverseRelation(s *SynSet, r Relation) {
	if r.Kind != Semantic {
		return
	}
	other, ok := w.SynSetWithID(r.Name)
	reverse := Reverse(r.SemanticType)
	if !ok || reverse == SemanticNone {
		return
	}
	back := NewSemanticRelation(s.ID, reverse)
	if !other.ContainsRelation(back) {
		other.AddRelation(back)
	}
}

func (w *WordNet) RemoveReverseRelation(s *SynSet, r Relation) {
	if r.Kind != Semantic {
		return
	}
	other, ok := w.SynSetWithID(r.Name)
	reverse := Reverse(r.SemanticType)
	if !ok || reverse == SemanticNone {
		return
	}
	other.RemoveRelation(NewSemanticRelation(s.ID, reverse))
}

// EqualizeSemanticRelations makes every semantic relation symmetric by
// adding the missing inverse edges.
func (w *WordNet) EqualizeSemanticRelations() {
	for _, s := range w.SynSetList() {
		// AddReverseRelation may append to s itself when s links to itself.
		relations := append([]Relation(nil), s.Relations...)
		for _, r := range relations {
			w.AddReverseRelation(s, r)
		}
	}
}

func (w *WordNet) FindPathToRoot(s *SynSet) []string {
	return FindPathToRoot(w, s)
}

func (w *WordNet) PercolateUp(s *SynSet) *SynSet {
	return PercolateUp(w, s)
}
