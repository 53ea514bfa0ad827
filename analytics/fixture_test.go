package analytics

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gourmetquest/dataset"
)

var fixtureHeader = []string{
	"Restaurant ID", "Restaurant Name", "Country Code", "City", "Address",
	"Longitude", "Latitude", "Cuisines", "Average Cost for two", "Currency",
	"Price range", "Aggregate rating", "Votes",
}

type listing struct {
	name     string
	code     int
	city     string
	lat, lng float64
	cuisines string
	cost     float64
	price    int
	rating   float64
	votes    int
}

// tableOf loads listings through the real loader. IDs are assigned from the
// position so no two listings are duplicates.
func tableOf(t *testing.T, listings ...listing) *dataset.Table {
	t.Helper()

	var b strings.Builder
	w := csv.NewWriter(&b)
	require.NoError(t, w.Write(fixtureHeader))
	for i, l := range listings {
		name := l.name
		if name == "" {
			name = "Restaurant " + strconv.Itoa(i+1)
		}
		price := l.price
		if price == 0 {
			price = 2
		}
		require.NoError(t, w.Write([]string{
			strconv.Itoa(i + 1),
			name,
			strconv.Itoa(l.code),
			l.city,
			"Address " + strconv.Itoa(i+1),
			strconv.FormatFloat(l.lng, 'f', -1, 64),
			strconv.FormatFloat(l.lat, 'f', -1, 64),
			l.cuisines,
			strconv.FormatFloat(l.cost, 'f', -1, 64),
			"Rs",
			strconv.Itoa(price),
			strconv.FormatFloat(l.rating, 'f', -1, 64),
			strconv.Itoa(l.votes),
		}))
	}
	w.Flush()
	require.NoError(t, w.Error())

	table, report, err := dataset.Load(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, len(listings), report.Rows)
	return table
}

// scenario is the three-listing example used across the aggregation tests.
func scenario(t *testing.T) *dataset.Table {
	return tableOf(t,
		listing{code: 1, city: "Delhi", cuisines: "Chinese, Thai", rating: 4.0, lat: 28.6, lng: 77.2, cost: 800, votes: 10},
		listing{code: 1, city: "Delhi", cuisines: "Chinese", rating: 3.0, lat: 28.7, lng: 77.1, cost: 400, votes: 20},
		listing{code: 30, city: "Rio", cuisines: "Brazilian", rating: 5.0, lat: -22.9, lng: -43.2, cost: 100, votes: 5},
	)
}
