package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher resolves a parsed free-text name to a catalog entry. The
// resolution is staged: exact match on folded names, then substring
// containment, then Levenshtein distance under a length-relative
// threshold. A miss at every stage is "unresolved", not an error; the
// caller keeps the free-text name without catalog linkage.
type Matcher struct {
	entries []Entry
	folded  []string
}

// NewMatcher builds a matcher over a catalog snapshot. Folded names are
// precomputed once; the snapshot is never mutated.
func NewMatcher(entries []Entry) *Matcher {
	m := &Matcher{
		entries: entries,
		folded:  make([]string, len(entries)),
	}
	for i, e := range entries {
		m.folded[i] = Fold(e.Name)
	}
	return m
}

// FindBestMatch returns the catalog entry best matching name, or false
// when nothing is close enough.
func (m *Matcher) FindBestMatch(name string) (Entry, bool) {
	input := Fold(name)
	if input == "" || len(m.entries) == 0 {
		return Entry{}, false
	}

	// stage 1: exact match after folding
	for i, f := range m.folded {
		if f == input {
			return m.entries[i], true
		}
	}

	// stage 2: substring containment either way; among hits, the entry
	// whose length is closest to the input wins
	inputLen := len([]rune(input))
	bestIdx := -1
	bestDiff := 0
	for i, f := range m.folded {
		if !contains(f, input) && !contains(input, f) {
			continue
		}
		diff := len([]rune(f)) - inputLen
		if diff < 0 {
			diff = -diff
		}
		if bestIdx == -1 || diff < bestDiff {
			bestIdx = i
			bestDiff = diff
		}
	}
	if bestIdx >= 0 {
		return m.entries[bestIdx], true
	}

	// stage 3: Levenshtein with a per-candidate threshold of
	// max(2, floor(0.4 × len(catalogName))); minimum distance wins,
	// first minimum on ties
	bestIdx = -1
	bestDist := 0
	for i, f := range m.folded {
		limit := int(0.4 * float64(len([]rune(f))))
		if limit < 2 {
			limit = 2
		}
		dist := levenshteinDistance(input, f)
		if dist > limit {
			continue
		}
		if bestIdx == -1 || dist < bestDist {
			bestIdx = i
			bestDist = dist
		}
	}
	if bestIdx >= 0 {
		return m.entries[bestIdx], true
	}

	return Entry{}, false
}

// Suggest ranks catalog names by fuzzy similarity to name and returns
// up to limit candidates, best first. Used for "did you mean" feedback
// when FindBestMatch comes up empty.
func (m *Matcher) Suggest(name string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	sort.Sort(ranks)

	out := make([]string, 0, limit)
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}

// levenshteinDistance is the standard insert/delete/substitute edit
// distance over code points, two-row variant.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len([]rune(s2))
	}
	if len(s2) == 0 {
		return len([]rune(s1))
	}

	r1 := []rune(s1)
	r2 := []rune(s2)

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := 0; j <= len(r2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = minOf(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

func minOf(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
