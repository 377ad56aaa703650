// Package mcpserver exposes the similarity engine as MCP tools over stdio.
package mcpserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet"
)

// New creates an MCP server with the wordnet tools registered.
func New(wn *wordnet.WordNet, ic similarity.InformationContents, suggestLimit int, version string) *mcp.Server {
	t := &Tools{WordNet: wn, IC: ic, SuggestLimit: suggestLimit}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "wnsim",
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "compute_similarity",
		Description: "Score two synsets with one of the metrics path, lch, wupalmer, resnik, jcn or lin",
	}, t.ComputeSimilarity)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "path_to_root",
		Description: "List the hypernym path from a synset up to its root",
	}, t.PathToRoot)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "lookup_literal",
		Description: "Find the synsets of a literal, with spelling suggestions when it is unknown",
	}, t.LookupLiteral)

	return srv
}
