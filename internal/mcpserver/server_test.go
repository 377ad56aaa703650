package mcpserver_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takatori/wnsim/internal/mcpserver"
	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet"
	"github.com/takatori/wnsim/internal/wordnet/wordnettest"
)

func connect(t *testing.T, ic similarity.InformationContents) *mcp.ClientSession {
	t.Helper()
	srv := mcpserver.New(wordnettest.Corpus(wordnettest.CurrentAncestors), ic, 3, "test")

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	_, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

// call returns the text of the first content item and whether it is an error.
func call(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text, result.IsError
}

func TestListTools(t *testing.T) {
	session := connect(t, nil)
	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"compute_similarity", "path_to_root", "lookup_literal"}, names)
}

func TestComputeSimilarity(t *testing.T) {
	session := connect(t, similarity.InformationContents{
		wordnettest.Kavun:  6,
		wordnettest.Karpuz: 8,
		"FIX-kavungiller":  3,
	})

	text, isErr := call(t, session, "compute_similarity", map[string]any{
		"metric": "wupalmer", "synset1": wordnettest.Kavun, "synset2": wordnettest.Karpuz,
	})
	require.False(t, isErr, text)
	var out struct {
		Score any `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.InDelta(t, 38.0/39.0, out.Score, 1e-9)

	text, isErr = call(t, session, "compute_similarity", map[string]any{
		"metric": "lin", "synset1": wordnettest.Kavun, "synset2": wordnettest.Karpuz,
	})
	require.False(t, isErr, text)
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.InDelta(t, 6.0/14.0, out.Score, 1e-9)

	text, isErr = call(t, session, "compute_similarity", map[string]any{
		"metric": "lch", "synset1": wordnettest.Kavun, "synset2": wordnettest.Varlik,
	})
	require.False(t, isErr, text)
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Equal(t, "NaN", out.Score)
}

func TestComputeSimilarity_Errors(t *testing.T) {
	session := connect(t, nil)

	tests := []struct {
		name     string
		args     map[string]any
		contains string
	}{
		{"unknown metric", map[string]any{"metric": "cosine", "synset1": wordnettest.Kavun, "synset2": wordnettest.Karpuz}, "cosine"},
		{"missing table", map[string]any{"metric": "resnik", "synset1": wordnettest.Kavun, "synset2": wordnettest.Karpuz}, "resnik"},
		{"unknown synset", map[string]any{"metric": "path", "synset1": wordnettest.Kavun, "synset2": "nope"}, "nope"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			text, isErr := call(t, session, "compute_similarity", test.args)
			assert.True(t, isErr)
			assert.Contains(t, text, test.contains)
		})
	}
}

func TestPathToRoot(t *testing.T) {
	session := connect(t, nil)

	text, isErr := call(t, session, "path_to_root", map[string]any{"synset": wordnettest.Karpuz})
	require.False(t, isErr, text)
	var out struct {
		Path  []string `json:"path"`
		Depth int      `json:"depth"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Equal(t, wordnettest.Karpuz, out.Path[0])
	assert.Equal(t, "FIX-kavungiller", out.Path[1])
	assert.Equal(t, len(out.Path), out.Depth)

	_, isErr = call(t, session, "path_to_root", map[string]any{"synset": "nope"})
	assert.True(t, isErr)
}

func TestLookupLiteral(t *testing.T) {
	session := connect(t, nil)

	text, isErr := call(t, session, "lookup_literal", map[string]any{"literal": "kalem"})
	require.False(t, isErr, text)
	var out struct {
		SynSets []struct {
			ID string `json:"id"`
		} `json:"synsets"`
		Suggestions []wordnet.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	require.Len(t, out.SynSets, 1)
	assert.Equal(t, wordnettest.Kalem, out.SynSets[0].ID)
	assert.Empty(t, out.Suggestions)

	text, isErr = call(t, session, "lookup_literal", map[string]any{"literal": "kalam"})
	require.False(t, isErr, text)
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Empty(t, out.SynSets)
	require.NotEmpty(t, out.Suggestions)
	assert.Equal(t, "kalem", out.Suggestions[0].Literal)
}

