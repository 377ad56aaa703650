package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/takatori/wnsim/internal/wordnet"
)

// SynSetResponse is the JSON view of a synset.
type SynSetResponse struct {
	ID          string             `json:"id"`
	Pos         wordnet.Pos        `json:"pos,omitempty"`
	Definitions []string           `json:"definitions,omitempty"`
	Example     string             `json:"example,omitempty"`
	Literals    []LiteralResponse  `json:"literals"`
	Relations   []RelationResponse `json:"relations"`
}

type LiteralResponse struct {
	Name   string `json:"name"`
	Sense  int    `json:"sense"`
	Origin string `json:"origin,omitempty"`
}

type RelationResponse struct {
	Kind   string `json:"kind"`
	Type   string `json:"type"`
	Target string `json:"target"`
}

type PathResponse struct {
	ID    string   `json:"id"`
	Path  []string `json:"path"`
	Depth int      `json:"depth"`
}

func toSynSetResponse(s *wordnet.SynSet) SynSetResponse {
	return SynSetResponse{
		ID:          s.ID,
		Pos:         s.Pos,
		Definitions: s.Definitions,
		Example:     s.Example,
		Literals: lo.Map(s.Literals, func(l *wordnet.Literal, _ int) LiteralResponse {
			return LiteralResponse{Name: l.Name, Sense: l.Sense, Origin: l.Origin}
		}),
		Relations: lo.Map(s.Relations, func(r wordnet.Relation, _ int) RelationResponse {
			switch r.Kind {
			case wordnet.Interlingual:
				return RelationResponse{Kind: "interlingual", Type: r.InterlingualType.String(), Target: r.Name}
			default:
				return RelationResponse{Kind: "semantic", Type: r.SemanticType.String(), Target: r.Name}
			}
		}),
	}
}

// NewSynSetHandler returns the synset named by the :id path parameter.
func NewSynSetHandler(wn *wordnet.WordNet) func(echo.Context) error {
	return func(c echo.Context) error {
		id := c.Param("id")
		s, ok := wn.SynSetWithID(id)
		if !ok {
			return errorJSON(c, synSetNotFound(id))
		}
		return c.JSON(http.StatusOK, toSynSetResponse(s))
	}
}

// NewPathToRootHandler returns the hypernym path of :id up to its root.
func NewPathToRootHandler(wn *wordnet.WordNet) func(echo.Context) error {
	return func(c echo.Context) error {
		id := c.Param("id")
		s, ok := wn.SynSetWithID(id)
		if !ok {
			return errorJSON(c, synSetNotFound(id))
		}
		path := wn.FindPathToRoot(s)
		return c.JSON(http.StatusOK, PathResponse{ID: id, Path: path, Depth: len(path)})
	}
}

type LiteralLookupResponse struct {
	Literal     string               `json:"literal"`
	SynSets     []SynSetResponse     `json:"synsets"`
	Suggestions []wordnet.Suggestion `json:"suggestions,omitempty"`
}

// NewLiteralHandler lists the synsets of the :name literal. Unknown literals
// answer 404 with up to suggestLimit close literals.
func NewLiteralHandler(wn *wordnet.WordNet, suggestLimit int) func(echo.Context) error {
	return func(c echo.Context) error {
		name := c.Param("name")
		synsets := wn.SynSetsWithLiteral(name)
		if len(synsets) == 0 {
			return c.JSON(http.StatusNotFound, LiteralLookupResponse{
				Literal:     name,
				SynSets:     []SynSetResponse{},
				Suggestions: wn.SuggestLiterals(name, suggestLimit),
			})
		}
		return c.JSON(http.StatusOK, LiteralLookupResponse{
			Literal: name,
			SynSets: lo.Map(synsets, func(s *wordnet.SynSet, _ int) SynSetResponse { return toSynSetResponse(s) }),
		})
	}
}
