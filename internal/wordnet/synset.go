package wordnet

import (
	"strings"

	"github.com/samber/lo"
)

type Pos string

const (
	Noun         Pos = "NOUN"
	Verb         Pos = "VERB"
	Adjective    Pos = "ADJECTIVE"
	Adverb       Pos = "ADVERB"
	Interjection Pos = "INTERJECTION"
	Conjunction  Pos = "CONJUNCTION"
	Preposition  Pos = "PREPOSITION"
	Pronoun      Pos = "PRONOUN"
)

// PosFromLetter decodes the single letter used in the resource's POS element.
func PosFromLetter(letter byte) (Pos, bool) {
	switch letter {
	case 'a':
		return Adjective, true
	case 'v':
		return Verb, true
	case 'b':
		return Adverb, true
	case 'n':
		return Noun, true
	case 'i':
		return Interjection, true
	case 'c':
		return Conjunction, true
	case 'p':
		return Preposition, true
	case 'r':
		return Pronoun, true
	}
	return Noun, false
}

// Literal is a word form with a sense index inside one synset.
type Literal struct {
	Name      string
	Sense     int
	SynSetID  string
	Origin    string
	GroupNo   int
	Relations []Relation
}

// SynSet is a concept node. Relations keep the order in which they were
// added; hypernym resolution depends on that order.
type SynSet struct {
	ID          string
	Pos         Pos
	Definitions []string
	Example     string
	Note        string
	Wiki        string
	Bcs         int
	Literals    []*Literal
	Relations   []Relation
}

func NewSynSet(id string) *SynSet {
	return &SynSet{ID: id}
}

// SetDefinition splits a '|' separated definition string.
func (s *SynSet) SetDefinition(definition string) {
	s.Definitions = lo.Map(strings.Split(definition, "|"), func(d string, _ int) string {
		return strings.TrimSpace(d)
	})
}

// Definition returns the first definition, or "" when there is none.
func (s *SynSet) Definition() string {
	if len(s.Definitions) == 0 {
		return ""
	}
	return s.Definitions[0]
}

func (s *SynSet) AddRelation(r Relation) {
	s.Relations = append(s.Relations, r)
}

// RemoveRelation removes the first relation equal to r.
func (s *SynSet) RemoveRelation(r Relation) {
	if i := lo.IndexOf(s.Relations, r); i != -1 {
		s.Relations = append(s.Relations[:i], s.Relations[i+1:]...)
	}
}

func (s *SynSet) ContainsRelation(r Relation) bool {
	return lo.Contains(s.Relations, r)
}

func (s *SynSet) ContainsRelationType(t SemanticRelationType) bool {
	return lo.ContainsBy(s.Relations, func(r Relation) bool {
		return r.Kind == Semantic && r.SemanticType == t
	})
}

// AddLiteral attaches a literal and rewrites its owner id.
func (s *SynSet) AddLiteral(l *Literal) {
	l.SynSetID = s.ID
	s.Literals = append(s.Literals, l)
}

func (s *SynSet) LiteralNames() []string {
	return lo.Map(s.Literals, func(l *Literal, _ int) string { return l.Name })
}

// Representative is the first literal name, used as a display label.
func (s *SynSet) Representative() string {
	if len(s.Literals) == 0 {
		return ""
	}
	return s.Literals[0].Name
}

// InterlingualSynonyms returns the foreign ids linked by a SYNONYM ILR.
func (s *SynSet) InterlingualSynonyms() []string {
	var ids []string
	for _, r := range s.Relations {
		switch r.Kind {
		case Interlingual:
			if r.InterlingualType == ILRSynonym {
				ids = append(ids, r.Name)
			}
		}
	}
	return ids
}

func (s *SynSet) String() string {
	return s.ID + " " + strings.Join(s.LiteralNames(), ", ")
}
