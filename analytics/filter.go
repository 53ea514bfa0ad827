package analytics

import (
	"gourmetquest/dataset"
	"gourmetquest/models"
)

// FilterByCountries keeps the records whose country name is in selected.
// An empty selection returns t itself.
func FilterByCountries(t *dataset.Table, selected []string) *dataset.Table {
	if len(selected) == 0 {
		return t
	}
	set := toSet(selected)
	return t.Where(func(r *models.Restaurant) bool {
		_, ok := set[r.CountryName]
		return ok
	})
}

// FilterByCuisines keeps the records offering at least one selected cuisine.
// An empty selection returns t itself.
func FilterByCuisines(t *dataset.Table, selected []string) *dataset.Table {
	if len(selected) == 0 {
		return t
	}
	set := toSet(selected)
	return t.Where(func(r *models.Restaurant) bool {
		return r.HasCuisine(set)
	})
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
