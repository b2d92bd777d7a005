package hub

// Names further than this many edits from a typo are noise, not suggestions.
const maxSuggestDistance = 3

// SuggestName returns the catalog name closest to name, or "" when nothing
// is within maxSuggestDistance edits. Ties keep the earliest candidate, so
// suggestions are stable across the catalog's deterministic order.
func SuggestName(name string, available []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range available {
		if d := editDistance(name, candidate); d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b. Flat names are
// ASCII, so bytes are compared directly and case matters. One row of the
// distance matrix is kept, with the diagonal carried in a scalar.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			up := row[j]
			if a[i-1] == b[j-1] {
				row[j] = diag
			} else {
				row[j] = min(diag, up, row[j-1]) + 1
			}
			diag = up
		}
	}
	return row[len(b)]
}
