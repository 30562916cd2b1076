package match

// Levenshtein computes the edit distance between a and b: the minimum
// number of single-byte insertions, deletions and substitutions turning
// one into the other.
func Levenshtein(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}

	if len(b) == 0 {
		return len(a)
	}

	// row[j] is the distance between the current prefix of a and b[:j].
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i

		for j := 1; j <= len(b); j++ {
			above := row[j]

			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			row[j] = min(above+1, row[j-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(b)]
}

// Similarity maps the edit distance to [0, 1]; 1 means equal strings.
func Similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}
