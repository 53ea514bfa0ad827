package handlers

import (
	"net/http"

	"gourmetquest/dataset"
)

// NewMux registers every dashboard endpoint over the canonical table.
func NewMux(t *dataset.Table, s Settings) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", HealthHandler(t))
	mux.HandleFunc("GET /api/summary", SummaryHandler(t))
	mux.HandleFunc("GET /api/map", MapHandler(t))
	mux.HandleFunc("GET /api/countries", CountriesHandler(t))
	mux.HandleFunc("GET /api/cities", CitiesHandler(t))
	mux.HandleFunc("GET /api/cities/ratings", CityRatingsHandler(t))
	mux.HandleFunc("GET /api/cuisines", CuisinesHandler(t, s))
	mux.HandleFunc("GET /api/cuisines/ratings", CuisineRatingsHandler(t))
	mux.HandleFunc("GET /api/cuisines/top", TopCuisinesHandler(t))
	mux.HandleFunc("GET /api/options/countries", CountryOptionsHandler())
	mux.HandleFunc("GET /api/options/cuisines", CuisineOptionsHandler(t))
	mux.HandleFunc("GET /api/export", ExportHandler(t))

	return mux
}
