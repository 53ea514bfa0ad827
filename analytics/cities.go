package analytics

import (
	"gourmetquest/dataset"
	"gourmetquest/models"
)

// TopCities returns the ten cities with the most records.
func TopCities(t *dataset.Table) []models.CityCount {
	acc := newAccumulator()
	rows := t.Rows()
	for i := range rows {
		acc.add(rows[i].City, 0)
	}

	out := make([]models.CityCount, 0, len(acc.keys))
	for _, k := range acc.keys {
		out = append(out, models.CityCount{City: k, Count: acc.count[k]})
	}
	return rankCities(out, topCities)
}

// CityRatings returns the five best (Descending) or worst (Ascending) rated
// cities by mean aggregate rating.
func CityRatings(t *dataset.Table, order Order) []models.CityRating {
	acc := newAccumulator()
	rows := t.Rows()
	for i := range rows {
		acc.add(rows[i].City, rows[i].AggregateRating)
	}

	out := make([]models.CityRating, 0, len(acc.keys))
	for _, k := range acc.keys {
		out = append(out, models.CityRating{City: k, Rating: acc.mean(k)})
	}
	return rank(out, order,
		func(c models.CityRating) float64 { return c.Rating.Value },
		func(c models.CityRating) string { return c.City },
		topCityRatings)
}

// CuisineDiversity returns the ten cities offering the most distinct
// cuisine labels.
func CuisineDiversity(t *dataset.Table) []models.CityCount {
	acc := newAccumulator()
	for _, row := range ExpandCuisines(t) {
		acc.addDistinct(row.Restaurant.City, row.Cuisine)
	}

	out := make([]models.CityCount, 0, len(acc.keys))
	for _, k := range acc.keys {
		out = append(out, models.CityCount{City: k, Count: len(acc.distinct[k])})
	}
	return rankCities(out, topCuisineDiversity)
}

func rankCities(rows []models.CityCount, limit int) []models.CityCount {
	return rank(rows, Descending,
		func(c models.CityCount) float64 { return float64(c.Count) },
		func(c models.CityCount) string { return c.City },
		limit)
}
