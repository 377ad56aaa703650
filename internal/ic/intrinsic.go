package ic

import (
	"math"

	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet"
)

// Intrinsic derives information content from the hypernym tree alone:
//
//	IC(c) = 1 - log(hypo(c)+1) / log(N)
//
// where hypo(c) is the number of synsets whose root path passes through c
// and N is the number of synsets. Leaves get 1, a root covering every synset
// gets 0. The tree is the one FindPathToRoot walks, so the first hypernym
// of each synset decides where it is counted.
func Intrinsic(wn *wordnet.WordNet) similarity.InformationContents {
	synsets := wn.SynSetList()
	table := make(similarity.InformationContents, len(synsets))
	if len(synsets) == 0 {
		return table
	}

	hypo := make(map[string]int, len(synsets))
	for _, s := range synsets {
		for _, ancestor := range wn.FindPathToRoot(s)[1:] {
			hypo[ancestor]++
		}
	}

	n := float64(len(synsets))
	for _, s := range synsets {
		if n <= 1 {
			table[s.ID] = 1
			continue
		}
		table[s.ID] = 1 - math.Log(float64(hypo[s.ID])+1)/math.Log(n)
	}
	return table
}
