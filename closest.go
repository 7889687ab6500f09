package gopages

import "math"

// closestName returns the candidate with the smallest edit distance to
// input, or an empty string when there are no candidates.
func closestName(input string, candidates []string) string {
	minDist := math.MaxInt
	closest := ""

	for _, candidate := range candidates {
		dist := levenshtein([]rune(candidate), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = candidate
		}
	}

	return closest
}

// levenshtein returns the edit distance between a and b using two rolling
// rows.
func levenshtein(a, b []rune) int {
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
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
