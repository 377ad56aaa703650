package wordnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takatori/wnsim/internal/wordnet"
	"github.com/takatori/wnsim/internal/wordnet/wordnettest"
)

func TestWordNet_Lookups(t *testing.T) {
	wn := wordnettest.Corpus(wordnettest.CurrentAncestors)

	s, ok := wn.SynSetWithLiteral("kalem", 1)
	require.True(t, ok)
	assert.Equal(t, wordnettest.Kalem, s.ID)

	_, ok = wn.SynSetWithLiteral("kalem", 2)
	assert.False(t, ok)

	_, ok = wn.SynSetWithID("TUR10-9999999")
	assert.False(t, ok)

	synsets := wn.SynSetsWithLiteral("karpuz")
	require.Len(t, synsets, 1)
	assert.Equal(t, wordnettest.Karpuz, synsets[0].ID)
	assert.Equal(t, 1, wn.NumberOfSynSetsWithLiteral("karpuz"))
	assert.Empty(t, wn.SynSetsWithLiteral("yok"))
	assert.Len(t, wn.LiteralsWithName("eşya"), 1)
	assert.Contains(t, wn.LiteralList(), "varlık")
	assert.Len(t, wn.SynSetsWithPartOfSpeech(wordnet.Noun), wn.Size())
	assert.Empty(t, wn.SynSetsWithPartOfSpeech(wordnet.Verb))
}

func TestWordNet_SynSetListIsSorted(t *testing.T) {
	b := wordnettest.NewBuilder()
	b.SynSet("c")
	b.SynSet("a")
	b.SynSet("b")

	ids := []string{}
	for _, s := range b.WordNet.SynSetList() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	s, _ := b.WordNet.SynSetWithID("b")
	b.WordNet.RemoveSynSet(s)
	assert.Equal(t, 2, b.WordNet.Size())
}

func TestWordNet_ReverseRelations(t *testing.T) {
	b := wordnettest.NewBuilder()
	b.Relate("dog", "animal", wordnet.Hypernym)
	b.Relate("dog", "tail", wordnet.PartMeronym)
	b.Relate("dog", "cat", wordnet.SimilarTo)

	b.WordNet.EqualizeSemanticRelations()

	animal, _ := b.WordNet.SynSetWithID("animal")
	tail, _ := b.WordNet.SynSetWithID("tail")
	cat, _ := b.WordNet.SynSetWithID("cat")
	dog, _ := b.WordNet.SynSetWithID("dog")

	assert.True(t, animal.ContainsRelation(wordnet.NewSemanticRelation("dog", wordnet.Hyponym)))
	assert.True(t, tail.ContainsRelation(wordnet.NewSemanticRelation("dog", wordnet.PartHolonym)))
	assert.Empty(t, cat.Relations)

	// idempotent
	b.WordNet.EqualizeSemanticRelations()
	assert.Len(t, animal.Relations, 1)
	assert.Len(t, dog.Relations, 3)

	b.WordNet.RemoveReverseRelation(dog, dog.Relations[0])
	assert.Empty(t, animal.Relations)
}

func TestWordNet_Interlingual(t *testing.T) {
	b := wordnettest.NewBuilder()
	s := wordnet.NewSynSet("TUR10-0000010")
	s.AddRelation(wordnet.NewInterlingualRelation("ENG31-02084071-n", wordnet.ILRSynonym))
	s.AddRelation(wordnet.NewInterlingualRelation("ENG31-01317541-n", wordnet.ILRHypernym))
	b.WordNet.AddSynSet(s)

	assert.Equal(t, []string{"ENG31-02084071-n"}, s.InterlingualSynonyms())
	require.Len(t, b.WordNet.Interlingual("ENG31-02084071-n"), 1)
	assert.Equal(t, s, b.WordNet.Interlingual("ENG31-01317541-n")[0])
	assert.Empty(t, b.WordNet.Interlingual("ENG31-00000000-n"))
}

func TestSynSet_Relations(t *testing.T) {
	s := wordnet.NewSynSet("s")
	h := wordnet.NewSemanticRelation("p", wordnet.Hypernym)
	a := wordnet.NewSemanticRelation("q", wordnet.Antonym)
	s.AddRelation(h)
	s.AddRelation(a)

	assert.True(t, s.ContainsRelationType(wordnet.Antonym))
	assert.False(t, s.ContainsRelationType(wordnet.Hyponym))

	s.RemoveRelation(h)
	assert.Equal(t, []wordnet.Relation{a}, s.Relations)
	s.RemoveRelation(h)
	assert.Len(t, s.Relations, 1)
}

func TestSynSet_Definition(t *testing.T) {
	s := wordnet.NewSynSet("s")
	assert.Equal(t, "", s.Definition())
	s.SetDefinition("yazı yazmaya yarayan araç | kurşun kalem")
	assert.Equal(t, []string{"yazı yazmaya yarayan araç", "kurşun kalem"}, s.Definitions)
	assert.Equal(t, "yazı yazmaya yarayan araç", s.Definition())
}

func TestSuggestLiterals(t *testing.T) {
	wn := wordnettest.Corpus(wordnettest.CurrentAncestors)

	suggestions := wn.SuggestLiterals("karpz", 2)
	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 2)
	assert.Equal(t, "karpuz", suggestions[0].Literal)
	assert.Equal(t, 1, suggestions[0].Distance)

	for _, s := range wn.SuggestLiterals("kalem", 10) {
		assert.NotEqual(t, "kalem", s.Literal)
	}
	assert.Nil(t, wn.SuggestLiterals("kalem", 0))
}
