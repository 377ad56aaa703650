package wordnet_test

import (
	"strings"
	"testing"

	"github.com/morikuni/failure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takatori/wnsim/internal/errors"
	"github.com/takatori/wnsim/internal/wordnet"
)

func TestLoadFile(t *testing.T) {
	wn, err := wordnet.LoadFile("testdata/mini_wordnet.xml")
	require.NoError(t, err)
	assert.Equal(t, 4, wn.Size())

	varlik, ok := wn.SynSetWithID("TUR10-0000010")
	require.True(t, ok)
	assert.Equal(t, wordnet.Noun, varlik.Pos)
	assert.Equal(t, []string{"var olan şey", "mevcudiyet"}, varlik.Definitions)
	assert.Equal(t, []string{"ENG31-00001740-n"}, varlik.InterlingualSynonyms())
	assert.Len(t, wn.Interlingual("ENG31-00001740-n"), 1)

	nesne, ok := wn.SynSetWithID("TUR10-0000020")
	require.True(t, ok)
	require.Len(t, nesne.Literals, 2)
	assert.Equal(t, "nesne", nesne.Literals[0].Name)
	assert.Equal(t, "Arapça", nesne.Literals[0].Origin)
	assert.Equal(t, "TUR10-0000020", nesne.Literals[0].SynSetID)
	assert.Equal(t, 2, nesne.Literals[1].Sense)
	assert.Equal(t, []wordnet.Relation{wordnet.NewSemanticRelation("TUR10-0000010", wordnet.DerivationRelated)}, nesne.Literals[1].Relations)
	assert.Equal(t, 1, nesne.Bcs)

	kalem, ok := wn.SynSetWithID("TUR10-0000030")
	require.True(t, ok)
	assert.Equal(t, wordnet.Noun, kalem.Pos, "unknown pos letters fall back to noun")
	assert.Equal(t, "kalemle yazdı", kalem.Example)
	assert.Equal(t, "not", kalem.Note)
	assert.Equal(t, "Kalem", kalem.Wiki)
	require.Len(t, kalem.Relations, 2, "relations without TYPE are skipped")
	assert.Equal(t, 3, kalem.Relations[0].ToIndex)
	assert.Equal(t, 2, wn.NumberOfSynSetsWithLiteral("kalem"))

	assert.Equal(t, []string{"TUR10-0000030", "TUR10-0000020", "TUR10-0000010"}, wn.FindPathToRoot(kalem))

	kosmak, ok := wn.SynSetWithID("TUR10-0000040")
	require.True(t, ok)
	assert.Equal(t, wordnet.Verb, kosmak.Pos)
	assert.Len(t, kosmak.Literals, 1, "literals without SENSE are skipped")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := wordnet.LoadFile("testdata/does_not_exist.xml")
	require.Error(t, err)
	assert.True(t, failure.Is(err, errors.ErrNotFound))
}

func TestLoad_Malformed(t *testing.T) {
	_, err := wordnet.Load(strings.NewReader("<SYNSETS><SYNSET><ID>x</ID>"))
	require.Error(t, err)
	assert.True(t, failure.Is(err, errors.ErrInvalidArgument))
}
