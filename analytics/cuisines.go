package analytics

import (
	"sort"

	"gourmetquest/dataset"
	"gourmetquest/models"
)

// TopCuisines counts cuisine occurrences after expansion and returns the n
// most frequent. n <= 0 returns all.
func TopCuisines(t *dataset.Table, n int) []models.CuisineCount {
	acc := newAccumulator()
	for _, row := range ExpandCuisines(t) {
		acc.add(row.Cuisine, 0)
	}

	out := make([]models.CuisineCount, 0, len(acc.keys))
	for _, k := range acc.keys {
		out = append(out, models.CuisineCount{Cuisine: k, Count: acc.count[k]})
	}
	return rank(out, Descending,
		func(c models.CuisineCount) float64 { return float64(c.Count) },
		func(c models.CuisineCount) string { return c.Cuisine },
		n)
}

// CuisineRatings averages the rating over expanded rows per cuisine and
// returns the ten leaders (Descending) or laggards (Ascending).
func CuisineRatings(t *dataset.Table, order Order) []models.CuisineRating {
	acc := newAccumulator()
	for _, row := range ExpandCuisines(t) {
		acc.add(row.Cuisine, row.Restaurant.AggregateRating)
	}

	out := make([]models.CuisineRating, 0, len(acc.keys))
	for _, k := range acc.keys {
		out = append(out, models.CuisineRating{Cuisine: k, Rating: acc.mean(k)})
	}
	return rank(out, order,
		func(c models.CuisineRating) float64 { return c.Rating.Value },
		func(c models.CuisineRating) string { return c.Cuisine },
		topCuisineRatings)
}

// TopRestaurants groups listings by restaurant name, drops names with fewer
// than minEntries listings and ranks the rest by mean rating then entry
// count, both descending. The top ten are returned. The country shown is the
// first known one among a name's listings.
func TopRestaurants(t *dataset.Table, minEntries int) []models.RestaurantRanking {
	acc := newAccumulator()
	first := make(map[string]*models.Restaurant)
	country := make(map[string]string)
	rows := t.Rows()
	for i := range rows {
		r := &rows[i]
		if _, ok := first[r.RestaurantName]; !ok {
			first[r.RestaurantName] = r
		}
		if _, ok := country[r.RestaurantName]; !ok && r.CountryKnown() {
			country[r.RestaurantName] = r.CountryName
		}
		acc.add(r.RestaurantName, r.AggregateRating)
	}

	out := make([]models.RestaurantRanking, 0)
	for _, k := range acc.keys {
		if acc.count[k] < minEntries {
			continue
		}
		f := first[k]
		out = append(out, models.RestaurantRanking{
			RestaurantName: k,
			Rating:         acc.mean(k),
			Entries:        acc.count[k],
			CountryName:    country[k],
			City:           f.City,
			Cuisines:       f.CuisinesRaw,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Rating.Value != b.Rating.Value {
			return a.Rating.Value > b.Rating.Value
		}
		if a.Entries != b.Entries {
			return a.Entries > b.Entries
		}
		return a.RestaurantName < b.RestaurantName
	})
	if len(out) > topRestaurants {
		out = out[:topRestaurants]
	}
	return out
}
