package match

import (
	"sort"
	"strings"
)

// DefaultThreshold is the lowest similarity Suggest reports.
const DefaultThreshold = 0.5

// Suggest returns up to limit candidates resembling name, most similar
// first. Comparison ignores ASCII case; ties keep candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	folded := strings.ToLower(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		s := Similarity(folded, strings.ToLower(c))
		if s >= DefaultThreshold {
			ranked = append(ranked, scored{c, s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
