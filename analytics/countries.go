package analytics

import (
	"gourmetquest/dataset"
	"gourmetquest/models"
)

// RestaurantsPerCountry counts records per country name, descending.
func RestaurantsPerCountry(t *dataset.Table) []models.CountryCount {
	acc := newAccumulator()
	rows := t.Rows()
	for i := range rows {
		acc.add(rows[i].CountryName, 0)
	}
	return countryCounts(acc, func(k string) int { return acc.count[k] })
}

// CitiesPerCountry counts distinct cities per country name, descending.
func CitiesPerCountry(t *dataset.Table) []models.CountryCount {
	acc := newAccumulator()
	rows := t.Rows()
	for i := range rows {
		acc.addDistinct(rows[i].CountryName, rows[i].City)
	}
	return countryCounts(acc, func(k string) int { return len(acc.distinct[k]) })
}

func countryCounts(acc *accumulator, count func(string) int) []models.CountryCount {
	out := make([]models.CountryCount, 0, len(acc.keys))
	for _, k := range acc.keys {
		out = append(out, models.CountryCount{CountryName: k, Count: count(k)})
	}
	return rank(out, Descending,
		func(c models.CountryCount) float64 { return float64(c.Count) },
		func(c models.CountryCount) string { return c.CountryName },
		0)
}

// RatingPerCountry averages the aggregate rating per country, descending.
func RatingPerCountry(t *dataset.Table) []models.CountryMean {
	return countryMeans(t, func(r *models.Restaurant) float64 { return r.AggregateRating })
}

// CostPerCountry averages the cost for two per country, descending.
func CostPerCountry(t *dataset.Table) []models.CountryMean {
	return countryMeans(t, func(r *models.Restaurant) float64 { return r.AverageCostForTwo })
}

func countryMeans(t *dataset.Table, value func(*models.Restaurant) float64) []models.CountryMean {
	acc := newAccumulator()
	rows := t.Rows()
	for i := range rows {
		acc.add(rows[i].CountryName, value(&rows[i]))
	}

	out := make([]models.CountryMean, 0, len(acc.keys))
	for _, k := range acc.keys {
		out = append(out, models.CountryMean{CountryName: k, Mean: acc.mean(k)})
	}
	return rank(out, Descending,
		func(c models.CountryMean) float64 { return c.Mean.Value },
		func(c models.CountryMean) string { return c.CountryName },
		0)
}
