package analytics

import (
	"sort"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"

	"gourmetquest/dataset"
	"gourmetquest/models"
)

const (
	geohashPrecision = 6
	markerCellLevel  = 10
)

type cityKey struct {
	city    string
	country string
}

// CityLocations groups records by (city, country name) and places each group
// at its median latitude and median longitude. Groups come out sorted by
// country then city.
func CityLocations(t *dataset.Table) []models.CityLocation {
	lats := make(map[cityKey][]float64)
	lngs := make(map[cityKey][]float64)
	var keys []cityKey

	rows := t.Rows()
	for i := range rows {
		k := cityKey{city: rows[i].City, country: rows[i].CountryName}
		if _, ok := lats[k]; !ok {
			keys = append(keys, k)
		}
		lats[k] = append(lats[k], rows[i].Latitude)
		lngs[k] = append(lngs[k], rows[i].Longitude)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].country != keys[j].country {
			return keys[i].country < keys[j].country
		}
		return keys[i].city < keys[j].city
	})

	out := make([]models.CityLocation, 0, len(keys))
	for _, k := range keys {
		lat, lng := Median(lats[k]), Median(lngs[k])
		out = append(out, newCityLocation(k, lat, lng, len(lats[k])))
	}
	return out
}

func newCityLocation(k cityKey, lat, lng float64, n int) models.CityLocation {
	loc := models.CityLocation{
		City:        k.city,
		CountryName: k.country,
		Latitude:    lat,
		Longitude:   lng,
		Restaurants: n,
	}

	ll := s2.LatLngFromDegrees(lat, lng)
	if !ll.IsValid() {
		return loc
	}
	loc.Valid = true
	loc.Geohash = geohash.EncodeWithPrecision(lat, lng, geohashPrecision)
	loc.CellToken = s2.CellIDFromLatLng(ll).Parent(markerCellLevel).ToToken()
	return loc
}

// Map builds the marker set and centres it on the mean marker position.
func Map(t *dataset.Table) models.MapView {
	markers := CityLocations(t)
	view := models.MapView{Markers: markers}

	var lat, lng float64
	var n int
	for _, m := range markers {
		if !m.Valid {
			continue
		}
		lat += m.Latitude
		lng += m.Longitude
		n++
	}
	if n > 0 {
		view.Center = models.LatLng{Latitude: lat / float64(n), Longitude: lng / float64(n)}
	}
	return view
}

// Median returns the middle value of xs, averaging the two middle values for
// even lengths. xs is not modified. An empty slice yields 0.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
