// Package textmatch provides the approximate string-matching primitives
// used by every fuzzy matcher in the chatbot: Levenshtein distance,
// text normalization and tokenization.
package textmatch

// Levenshtein computes the edit distance between a and b: the minimum
// number of single-character insertions, deletions and substitutions
// needed to transform one into the other. Comparison is case-sensitive;
// callers normalize before invoking.
//
// Operates on runes so accented characters count as one edit. Uses two
// rows instead of the full DP matrix.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string in ra so the rows stay small.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			if ra[i-1] == rb[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + min3(prev[i-1], prev[i], curr[i-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
