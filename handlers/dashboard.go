package handlers

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"gourmetquest/analytics"
	"gourmetquest/dataset"
	"gourmetquest/models"
)

// Settings are the presets of the dashboard views.
type Settings struct {
	TopCuisinesDefault   int
	MinRestaurantEntries int
}

// DefaultSettings are the presets used when no configuration overrides them.
func DefaultSettings() Settings {
	return Settings{
		TopCuisinesDefault:   analytics.DefaultTopCuisines,
		MinRestaurantEntries: analytics.MinRestaurantEntries,
	}
}

// countryView parses the request and applies the country filter. It writes
// the 400 response itself and returns ok=false on bad parameters.
func countryView(w http.ResponseWriter, r *http.Request, t *dataset.Table) (*dataset.Table, FilterParams, bool) {
	p, err := ParseFilterParams(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return nil, p, false
	}
	return analytics.FilterByCountries(t, p.Countries), p, true
}

// HealthHandler reports that the canonical table is loaded.
func HealthHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "rows": t.Len()})
	}
}

// SummaryHandler serves the metric tiles of the home view.
func SummaryHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtered, _, ok := countryView(w, r, t)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, analytics.Summarize(filtered))
	}
}

// MapHandler serves the city markers of the home view map.
func MapHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtered, _, ok := countryView(w, r, t)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, analytics.Map(filtered))
	}
}

// CountriesResponse is the payload of the countries view.
type CountriesResponse struct {
	Restaurants []models.CountryCount `json:"restaurants"`
	Cities      []models.CountryCount `json:"cities"`
	Ratings     []models.CountryMean  `json:"ratings"`
	CostForTwo  []models.CountryMean  `json:"cost_for_two"`
}

// CountriesHandler serves the per-country aggregations.
func CountriesHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtered, _, ok := countryView(w, r, t)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, CountriesResponse{
			Restaurants: analytics.RestaurantsPerCountry(filtered),
			Cities:      analytics.CitiesPerCountry(filtered),
			Ratings:     analytics.RatingPerCountry(filtered),
			CostForTwo:  analytics.CostPerCountry(filtered),
		})
	}
}

// CitiesResponse is the payload of the cities view.
type CitiesResponse struct {
	TopCities        []models.CityCount  `json:"top_cities"`
	BestRated        []models.CityRating `json:"best_rated"`
	WorstRated       []models.CityRating `json:"worst_rated"`
	CuisineDiversity []models.CityCount  `json:"cuisine_diversity"`
}

// CitiesHandler serves the per-city aggregations.
func CitiesHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtered, _, ok := countryView(w, r, t)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, CitiesResponse{
			TopCities:        analytics.TopCities(filtered),
			BestRated:        analytics.CityRatings(filtered, analytics.Descending),
			WorstRated:       analytics.CityRatings(filtered, analytics.Ascending),
			CuisineDiversity: analytics.CuisineDiversity(filtered),
		})
	}
}

// CityRatingsHandler serves the five best or worst rated cities, picked by
// the order parameter.
func CityRatingsHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := ParseOrderParam(r.URL.Query())
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		filtered, _, ok := countryView(w, r, t)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, analytics.CityRatings(filtered, order))
	}
}

// CuisinesResponse is the payload of the cuisines view.
type CuisinesResponse struct {
	Options        []string                   `json:"options"`
	Selected       []string                   `json:"selected"`
	TopRestaurants []models.RestaurantRanking `json:"top_restaurants"`
	BestCuisines   []models.CuisineRating     `json:"best_cuisines"`
	WorstCuisines  []models.CuisineRating     `json:"worst_cuisines"`
	TopCuisines    []models.CuisineCount      `json:"top_cuisines"`
}

// CuisinesHandler applies the country filter, derives the cuisine options and
// default selection from that intermediate table, then applies the cuisine
// filter before aggregating.
func CuisinesHandler(t *dataset.Table, s Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		byCountry, p, ok := countryView(w, r, t)
		if !ok {
			return
		}

		selected := p.Cuisines
		if !p.CuisinesSet {
			selected = analytics.DefaultCuisineSelection(byCountry, s.TopCuisinesDefault)
		}
		if selected == nil {
			selected = []string{}
		}
		filtered := analytics.FilterByCuisines(byCountry, selected)

		log.Debug().
			Int("country_rows", byCountry.Len()).
			Int("cuisine_rows", filtered.Len()).
			Strs("cuisines", selected).
			Msg("Cuisine view filtered")

		writeJSON(w, http.StatusOK, CuisinesResponse{
			Options:        analytics.CuisineOptions(byCountry),
			Selected:       selected,
			TopRestaurants: analytics.TopRestaurants(filtered, s.MinRestaurantEntries),
			BestCuisines:   analytics.CuisineRatings(filtered, analytics.Descending),
			WorstCuisines:  analytics.CuisineRatings(filtered, analytics.Ascending),
			TopCuisines:    analytics.TopCuisines(filtered, p.N),
		})
	}
}

// CuisineRatingsHandler serves the ten best or worst rated cuisines under
// both filters. Without a cuisines parameter no cuisine filter applies.
func CuisineRatingsHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := ParseOrderParam(r.URL.Query())
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		filtered, p, ok := countryView(w, r, t)
		if !ok {
			return
		}
		filtered = analytics.FilterByCuisines(filtered, p.Cuisines)
		writeJSON(w, http.StatusOK, analytics.CuisineRatings(filtered, order))
	}
}

// TopCuisinesHandler serves the n most frequent cuisines (n defaults to 10).
func TopCuisinesHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtered, p, ok := countryView(w, r, t)
		if !ok {
			return
		}
		filtered = analytics.FilterByCuisines(filtered, p.Cuisines)
		writeJSON(w, http.StatusOK, analytics.TopCuisines(filtered, p.N))
	}
}

// CountryOptionsHandler lists the selectable countries, narrowed by q.
func CountryOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		writeJSON(w, http.StatusOK, analytics.SuggestOptions(analytics.CountryOptions(), q, DefaultSuggestions))
	}
}

// CuisineOptionsHandler lists the cuisines available under the country
// filter, narrowed by q.
func CuisineOptionsHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtered, p, ok := countryView(w, r, t)
		if !ok {
			return
		}
		options := analytics.CuisineOptions(filtered)
		if p.Query != "" {
			options = analytics.SuggestOptions(options, p.Query, DefaultSuggestions)
		}
		writeJSON(w, http.StatusOK, options)
	}
}

// ExportHandler streams the country-filtered table as a CSV attachment.
func ExportHandler(t *dataset.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtered, _, ok := countryView(w, r, t)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", analytics.ExportFilename))
		if err := analytics.ExportCSV(w, filtered); err != nil {
			log.Error().Err(err).Msg("CSV export failed")
		}
	}
}
