package wordnet

import "github.com/samber/lo"

// LCS is the lowest common subsumer of two root paths. Depth is counted as
// len(path1) - i + 1 where i is the subsumer's index in the first path; the
// similarity formulas are calibrated against that offset.
type LCS struct {
	ID    string
	Depth int
}

// PercolateUp returns the parent of s: the target of its first HYPERNYM or
// INSTANCE_HYPERNYM relation. Later hypernyms are ignored, so the relation
// graph is walked as a tree. It returns nil when s has no hypernym or the
// target id is unknown to g.
func PercolateUp(g Graph, s *SynSet) *SynSet {
	for _, r := range s.Relations {
		if !r.IsHypernym() {
			continue
		}
		parent, ok := g.SynSetWithID(r.Name)
		if !ok {
			return nil
		}
		return parent
	}
	return nil
}

// FindPathToRoot returns the ids from s up to its root. The walk stops at a
// synset without a parent or before an id would repeat, so the result is
// never empty and never contains duplicates.
func FindPathToRoot(g Graph, s *SynSet) []string {
	path := []string{s.ID}
	for {
		s = PercolateUp(g, s)
		if s == nil || lo.Contains(path, s.ID) {
			return path
		}
		path = append(path, s.ID)
	}
}

// FindLCS scans path1 from its start and returns the first id that also
// occurs in path2.
func FindLCS(path1, path2 []string) (LCS, bool) {
	for i, id := range path1 {
		if lo.Contains(path2, id) {
			return LCS{ID: id, Depth: len(path1) - i + 1}, true
		}
	}
	return LCS{}, false
}

// FindLCSDepth returns the LCS depth, or -1 when the paths are disjoint.
func FindLCSDepth(path1, path2 []string) int {
	if lcs, ok := FindLCS(path1, path2); ok {
		return lcs.Depth
	}
	return -1
}

// FindLCSID returns the LCS id, or "" when the paths are disjoint.
func FindLCSID(path1, path2 []string) string {
	if lcs, ok := FindLCS(path1, path2); ok {
		return lcs.ID
	}
	return ""
}

// FindPathLength returns i + j - 1 for the first id of path1 (index i) that
// occurs in path2 (index j), or -1 when there is no common id.
func FindPathLength(path1, path2 []string) int {
	for i, id := range path1 {
		if j := lo.IndexOf(path2, id); j != -1 {
			return i + j - 1
		}
	}
	return -1
}
