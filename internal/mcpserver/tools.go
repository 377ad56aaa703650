package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"
	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet"
)

// Tools holds what the tool handlers read. Nothing here is mutated after
// construction.
type Tools struct {
	WordNet      *wordnet.WordNet
	IC           similarity.InformationContents
	SuggestLimit int
}

type ComputeSimilarityInput struct {
	Metric  string `json:"metric" jsonschema:"Metric name: path, lch, wupalmer, resnik, jcn or lin"`
	SynSet1 string `json:"synset1" jsonschema:"Id of the first synset"`
	SynSet2 string `json:"synset2" jsonschema:"Id of the second synset"`
}

type PathToRootInput struct {
	SynSet string `json:"synset" jsonschema:"Id of the synset"`
}

type LookupLiteralInput struct {
	Literal string `json:"literal" jsonschema:"Literal (word form) to look up"`
}

type scoreResult struct {
	Metric  string           `json:"metric"`
	SynSet1 string           `json:"synset1"`
	SynSet2 string           `json:"synset2"`
	Score   similarity.Score `json:"score"`
}

type pathResult struct {
	SynSet string   `json:"synset"`
	Path   []string `json:"path"`
	Depth  int      `json:"depth"`
}

type literalSynSet struct {
	ID         string   `json:"id"`
	Literals   []string `json:"literals"`
	Definition string   `json:"definition,omitempty"`
}

type literalResult struct {
	Literal     string               `json:"literal"`
	SynSets     []literalSynSet      `json:"synsets"`
	Suggestions []wordnet.Suggestion `json:"suggestions,omitempty"`
}

func (t *Tools) ComputeSimilarity(_ context.Context, _ *mcp.CallToolRequest, input ComputeSimilarityInput) (*mcp.CallToolResult, any, error) {
	sim, err := similarity.New(similarity.Metric(input.Metric), t.WordNet, t.IC)
	if err != nil {
		return toolError("Cannot use metric %q: %v", input.Metric, err), nil, nil
	}
	s1, ok := t.WordNet.SynSetWithID(input.SynSet1)
	if !ok {
		return toolError("Synset %q not found", input.SynSet1), nil, nil
	}
	s2, ok := t.WordNet.SynSetWithID(input.SynSet2)
	if !ok {
		return toolError("Synset %q not found", input.SynSet2), nil, nil
	}

	score, err := sim.ComputeSimilarity(s1, s2)
	if err != nil {
		return toolError("Failed to compute similarity: %v", err), nil, nil
	}
	return toolJSON(scoreResult{
		Metric:  input.Metric,
		SynSet1: input.SynSet1,
		SynSet2: input.SynSet2,
		Score:   similarity.Score(score),
	})
}

func (t *Tools) PathToRoot(_ context.Context, _ *mcp.CallToolRequest, input PathToRootInput) (*mcp.CallToolResult, any, error) {
	s, ok := t.WordNet.SynSetWithID(input.SynSet)
	if !ok {
		return toolError("Synset %q not found", input.SynSet), nil, nil
	}
	path := t.WordNet.FindPathToRoot(s)
	return toolJSON(pathResult{SynSet: input.SynSet, Path: path, Depth: len(path)})
}

func (t *Tools) LookupLiteral(_ context.Context, _ *mcp.CallToolRequest, input LookupLiteralInput) (*mcp.CallToolResult, any, error) {
	if input.Literal == "" {
		return toolError("literal is required"), nil, nil
	}
	synsets := t.WordNet.SynSetsWithLiteral(input.Literal)
	result := literalResult{
		Literal: input.Literal,
		SynSets: lo.Map(synsets, func(s *wordnet.SynSet, _ int) literalSynSet {
			return literalSynSet{ID: s.ID, Literals: s.LiteralNames(), Definition: s.Definition()}
		}),
	}
	if len(synsets) == 0 {
		result.Suggestions = t.WordNet.SuggestLiterals(input.Literal, t.SuggestLimit)
	}
	return toolJSON(result)
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
