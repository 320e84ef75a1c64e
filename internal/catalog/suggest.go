package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps the names offered for a miss.
const maxSuggestions = 3

// Suggest returns up to three candidates close to name, nearest first.
// Matching ignores case; ties are broken alphabetically.
func Suggest(name string, candidates []string) []string {
	if name == "" {
		return nil
	}
	type scored struct {
		val  string
		dist int
	}

	needle := strings.ToLower(name)
	var results []scored
	for _, cand := range candidates {
		lower := strings.ToLower(cand)
		dist := levenshtein.ComputeDistance(needle, lower)
		if strings.HasPrefix(lower, needle) || strings.HasPrefix(needle, lower) {
			dist = min(dist, 1)
		}
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		results = append(results, scored{val: cand, dist: dist})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})

	out := make([]string, 0, min(len(results), maxSuggestions))
	for i := 0; i < len(results) && i < maxSuggestions; i++ {
		out = append(out, results[i].val)
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
