package analytics

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"gourmetquest/dataset"
	"gourmetquest/models"
)

// CountryOptions lists every country of the lookup table, sorted.
func CountryOptions() []string {
	return models.CountryNames()
}

// CuisineOptions lists the distinct cuisine labels of t, sorted.
func CuisineOptions(t *dataset.Table) []string {
	set := make(map[string]struct{})
	rows := t.Rows()
	for i := range rows {
		for _, c := range rows[i].Cuisines {
			set[c] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// DefaultCuisineSelection returns the n most frequent cuisines of t sorted
// by name, the preset selection of the cuisine view.
func DefaultCuisineSelection(t *dataset.Table, n int) []string {
	top := TopCuisines(t, n)
	out := make([]string, 0, len(top))
	for _, c := range top {
		out = append(out, c.Cuisine)
	}
	sort.Strings(out)
	return out
}

// SuggestOptions filters options by q. Case-insensitive substring matches
// come first in option order, followed by the closest remaining options by
// edit distance. An empty q returns options unchanged.
func SuggestOptions(options []string, q string, limit int) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return options
	}

	type candidate struct {
		option   string
		distance int
	}

	matches := make([]string, 0)
	var rest []candidate
	for _, opt := range options {
		lower := strings.ToLower(opt)
		if strings.Contains(lower, q) {
			matches = append(matches, opt)
			continue
		}
		d := levenshtein.ComputeDistance(q, lower)
		if d <= maxSuggestDistance(q) {
			rest = append(rest, candidate{option: opt, distance: d})
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].distance < rest[j].distance
	})
	for _, c := range rest {
		matches = append(matches, c.option)
	}

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// maxSuggestDistance scales the accepted typo count with the query length.
func maxSuggestDistance(q string) int {
	n := len([]rune(q))
	switch {
	case n <= 3:
		return 1
	case n <= 7:
		return 2
	default:
		return 3
	}
}
