package wordnet

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// Suggestion is a known literal close to a queried word.
type Suggestion struct {
	Literal  string  `json:"literal"`
	Score    float32 `json:"score"`
	Distance int     `json:"distance"`
}

// SuggestLiterals ranks the indexed literal names by Levenshtein similarity
// to word and returns at most limit of them. Exact matches are excluded.
func (w *WordNet) SuggestLiterals(word string, limit int) []Suggestion {
	if limit <= 0 || word == "" {
		return nil
	}
	var suggestions []Suggestion
	for name := range w.literals {
		if name == word {
			continue
		}
		score, err := edlib.StringsSimilarity(word, name, edlib.Levenshtein)
		if err != nil || score <= 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Literal:  name,
			Score:    score,
			Distance: edlib.LevenshteinDistance(word, name),
		})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Literal < suggestions[j].Literal
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
