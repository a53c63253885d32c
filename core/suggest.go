package core

import "strings"

// closestMatch returns the keyword nearest to name by edit distance, or ""
// when no keyword is close enough to be a plausible typo. Ties go to the
// earlier keyword.
func closestMatch(name string, keywords []string) string {
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	limit := max(2, len(name)/3)

	best, bestDist := "", limit+1
	for _, kw := range keywords {
		if d := editDistance(name, strings.ToLower(kw)); d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best
}

// editDistance counts the insertions, deletions, substitutions and adjacent
// swaps needed to turn a into b (optimal string alignment distance).
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	// rows i-2, i-1 and i of the distance table
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				curr[j] = min(curr[j], prev2[j-2]+1)
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[len(b)]
}
