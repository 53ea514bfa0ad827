package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmetquest/analytics"
	"gourmetquest/dataset"
	"gourmetquest/models"
)

const fixture = `Restaurant ID,Restaurant Name,Country Code,City,Address,Longitude,Latitude,Cuisines,Average Cost for two,Currency,Price range,Aggregate rating,Votes
1,Dragon House,1,Delhi,Street 1,77.2,28.6,"Chinese, Thai",800,Rs,2,4.0,10
2,Wok Express,1,Delhi,Street 2,77.1,28.7,Chinese,400,Rs,1,3.0,20
3,Churrasco,30,Rio,Rua 3,-43.2,-22.9,Brazilian,100,BRL,4,5.0,5
`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	table, _, err := dataset.Load(strings.NewReader(fixture))
	require.NoError(t, err)
	return LoggingMiddleware(NewMux(table, DefaultSettings()))
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestParseFilterParams(t *testing.T) {
	p, err := ParseFilterParams(map[string][]string{
		"countries": {"India, Brazil,"},
		"order":     {"worst"},
		"n":         {"500"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"India", "Brazil"}, p.Countries)
	assert.False(t, p.CuisinesSet)
	assert.Equal(t, MaxTopN, p.N)

	p, err = ParseFilterParams(map[string][]string{"cuisines": {""}})
	require.NoError(t, err)
	assert.True(t, p.CuisinesSet)
	assert.Empty(t, p.Cuisines)
	assert.Equal(t, DefaultTopN, p.N)

	_, err = ParseFilterParams(map[string][]string{"n": {"0"}})
	assert.Error(t, err)

	_, err = ParseFilterParams(map[string][]string{"order": {"upside"}})
	assert.NoError(t, err)
	_, err = ParseOrderParam(map[string][]string{"order": {"upside"}})
	assert.Error(t, err)
}

func TestParseFilterParams_MergesRepeatedValues(t *testing.T) {
	p, err := ParseFilterParams(map[string][]string{
		"countries": {"India", "Brazil,Qatar"},
		"cuisines":  {"Thai", "", "Chinese"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"India", "Brazil", "Qatar"}, p.Countries)
	assert.Equal(t, []string{"Thai", "Chinese"}, p.Cuisines)
}

func TestDefaultSettings_SharePresets(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, analytics.DefaultTopCuisines, s.TopCuisinesDefault)
	assert.Equal(t, analytics.MinRestaurantEntries, s.MinRestaurantEntries)
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decode(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["rows"])
}

func TestSummary_FiltersByCountry(t *testing.T) {
	h := newTestServer(t)

	var all models.Summary
	decode(t, get(t, h, "/api/summary"), &all)
	assert.Equal(t, models.Summary{Restaurants: 3, Countries: 2, Cities: 2, Votes: 35, CuisineTypes: 3}, all)

	var india models.Summary
	decode(t, get(t, h, "/api/summary?countries=India"), &india)
	assert.Equal(t, models.Summary{Restaurants: 2, Countries: 1, Cities: 1, Votes: 30, CuisineTypes: 2}, india)
}

func TestBadParameters_Return400(t *testing.T) {
	h := newTestServer(t)
	for _, target := range []string{"/api/cuisines/top?n=abc", "/api/cuisines/top?n=-3", "/api/cities/ratings?order=sideways", "/api/cuisines/ratings?order=up"} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)

		var body map[string]string
		decode(t, rec, &body)
		assert.NotEmpty(t, body["error"], target)
	}
}

func TestSummary_RepeatedCountries(t *testing.T) {
	var both models.Summary
	decode(t, get(t, newTestServer(t), "/api/summary?countries=India&countries=Brazil"), &both)
	assert.Equal(t, 3, both.Restaurants)
	assert.Equal(t, 2, both.Countries)
}

func TestOrderIgnoredWithoutRanking(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/summary?order=sideways")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCityRatings_FollowOrder(t *testing.T) {
	h := newTestServer(t)

	var best, worst []models.CityRating
	decode(t, get(t, h, "/api/cities/ratings?order=best"), &best)
	decode(t, get(t, h, "/api/cities/ratings?order=worst"), &worst)
	require.Len(t, best, 2)
	require.Len(t, worst, 2)
	assert.Equal(t, "Rio", best[0].City)
	assert.Equal(t, "Delhi", worst[0].City)

	var preset []models.CityRating
	decode(t, get(t, h, "/api/cities/ratings"), &preset)
	assert.Equal(t, best, preset)
}

func TestCuisineRatings_FollowOrder(t *testing.T) {
	h := newTestServer(t)

	var desc, asc []models.CuisineRating
	decode(t, get(t, h, "/api/cuisines/ratings?order=desc"), &desc)
	decode(t, get(t, h, "/api/cuisines/ratings?order=asc"), &asc)
	require.Len(t, desc, 3)
	require.Len(t, asc, 3)
	assert.Equal(t, "Brazilian", desc[0].Cuisine)
	assert.Equal(t, "Chinese", asc[0].Cuisine)
	assert.NotEqual(t, desc[0], asc[0])

	var india []models.CuisineRating
	decode(t, get(t, h, "/api/cuisines/ratings?countries=India&cuisines=Chinese&order=worst"), &india)
	require.Len(t, india, 2)
	assert.Equal(t, "Chinese", india[0].Cuisine)
	assert.InDelta(t, 3.5, india[0].Rating.Value, 1e-9)
}

func TestCountries(t *testing.T) {
	var resp CountriesResponse
	decode(t, get(t, newTestServer(t), "/api/countries"), &resp)

	require.Len(t, resp.Restaurants, 2)
	assert.Equal(t, models.CountryCount{CountryName: "India", Count: 2}, resp.Restaurants[0])
	require.Len(t, resp.Ratings, 2)
	assert.Equal(t, "Brazil", resp.Ratings[0].CountryName)
	require.Len(t, resp.CostForTwo, 2)
	assert.Equal(t, 600.0, resp.CostForTwo[0].Mean.Rounded)
}

func TestCities(t *testing.T) {
	var resp CitiesResponse
	decode(t, get(t, newTestServer(t), "/api/cities"), &resp)

	require.Len(t, resp.TopCities, 2)
	assert.Equal(t, models.CityCount{City: "Delhi", Count: 2}, resp.TopCities[0])
	assert.Equal(t, "Rio", resp.BestRated[0].City)
	assert.Equal(t, "Delhi", resp.WorstRated[0].City)
	assert.Equal(t, models.CityCount{City: "Delhi", Count: 2}, resp.CuisineDiversity[0])
}

func TestCuisines_DefaultAndExplicitSelection(t *testing.T) {
	h := newTestServer(t)

	var preset CuisinesResponse
	decode(t, get(t, h, "/api/cuisines"), &preset)
	assert.Equal(t, []string{"Brazilian", "Chinese", "Thai"}, preset.Options)
	assert.Equal(t, []string{"Brazilian", "Chinese", "Thai"}, preset.Selected)
	assert.NotNil(t, preset.TopRestaurants)
	assert.Empty(t, preset.TopRestaurants)

	var none CuisinesResponse
	decode(t, get(t, h, "/api/cuisines?cuisines="), &none)
	assert.NotNil(t, none.Selected)
	assert.Empty(t, none.Selected)
	assert.Len(t, none.TopCuisines, 3)

	var thai CuisinesResponse
	decode(t, get(t, h, "/api/cuisines?cuisines=Thai"), &thai)
	assert.Equal(t, []string{"Thai"}, thai.Selected)
	require.Len(t, thai.TopCuisines, 2)
	assert.Equal(t, "Chinese", thai.TopCuisines[0].Cuisine)
	assert.Equal(t, 1, thai.TopCuisines[0].Count)

	var brazil CuisinesResponse
	decode(t, get(t, h, "/api/cuisines?countries=Brazil"), &brazil)
	assert.Equal(t, []string{"Brazilian"}, brazil.Options)
	assert.Equal(t, []string{"Brazilian"}, brazil.Selected)
}

func TestTopCuisines(t *testing.T) {
	var top []models.CuisineCount
	decode(t, get(t, newTestServer(t), "/api/cuisines/top?n=1"), &top)
	assert.Equal(t, []models.CuisineCount{{Cuisine: "Chinese", Count: 2}}, top)
}

func TestMap(t *testing.T) {
	var view models.MapView
	decode(t, get(t, newTestServer(t), "/api/map"), &view)

	require.Len(t, view.Markers, 2)
	assert.Equal(t, "Rio", view.Markers[0].City)
	assert.Equal(t, "Delhi", view.Markers[1].City)
	assert.InDelta(t, 28.65, view.Markers[1].Latitude, 1e-9)
	assert.True(t, view.Markers[1].Valid)
}

func TestOptions(t *testing.T) {
	h := newTestServer(t)

	var countries []string
	decode(t, get(t, h, "/api/options/countries?q=indi"), &countries)
	assert.Equal(t, []string{"India"}, countries)

	var cuisines []string
	decode(t, get(t, h, "/api/options/cuisines?countries=India"), &cuisines)
	assert.Equal(t, []string{"Chinese", "Thai"}, cuisines)
}

func TestExport(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/export?countries=India")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="data.csv"`, rec.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Len(t, records[0], 15)
	assert.Equal(t, dataset.ColCountryName, records[0][dataset.CountryNameOffset])
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/api/health")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestUnknownRoute(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
