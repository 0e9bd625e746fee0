package spell

import (
	"slices"
	"strings"
)

type candidate struct {
	word     string
	distance int
}

// suggest returns up to limit dictionary words within maxDistance edits of
// word, closest first, ties broken alphabetically.
func suggest(word string, dicts []*Dictionary, fold func(string) string, limit, maxDistance int) []string {
	if limit <= 0 || maxDistance <= 0 {
		return nil
	}

	target := []rune(fold(word))
	seen := make(map[string]bool)
	var found []candidate

	for _, d := range dicts {
		for n := len(target) - maxDistance; n <= len(target)+maxDistance; n++ {
			for _, w := range d.byLength[n] {
				if seen[w] {
					continue
				}
				dist := distance(target, []rune(fold(w)))
				if dist > maxDistance {
					continue
				}
				seen[w] = true
				found = append(found, candidate{word: w, distance: dist})
			}
		}
	}

	slices.SortFunc(found, func(a, b candidate) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		return strings.Compare(a.word, b.word)
	})

	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.word
	}
	return out
}

// distance is the optimal string alignment distance: insertions, deletions,
// substitutions and transpositions of adjacent runes each cost one.
func distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				cur[j] = min(cur[j], prev2[j-2]+1)
			}
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[len(b)]
}
