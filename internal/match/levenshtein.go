package match

import "strings"

// Distance computes the Levenshtein distance between a and b: the minimum
// number of single-byte insertions, deletions or substitutions turning one
// into the other.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep the rows as short as the shorter string.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns the candidate nearest to name, ignoring case. Candidates
// further away than a third of name's length are not considered; ok is false
// when none is left. Ties go to the earlier candidate.
func Closest(name string, candidates []string) (best string, ok bool) {
	limit := max(1, len(name)/3)
	lower := strings.ToLower(name)
	bestDistance := limit + 1

	for _, c := range candidates {
		if d := Distance(lower, strings.ToLower(c)); d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, bestDistance <= limit
}

// Hint returns " (did you mean X?)" for the closest candidate, or "".
func Hint(name string, candidates []string) string {
	if best, ok := Closest(name, candidates); ok && best != name {
		return " (did you mean " + best + "?)"
	}

	return ""
}
