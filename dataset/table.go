package dataset

import "gourmetquest/models"

// Column names of the source file. Matching is case-insensitive.
const (
	ColRestaurantID   = "Restaurant ID"
	ColRestaurantName = "Restaurant Name"
	ColCountryCode    = "Country Code"
	ColCity           = "City"
	ColLongitude      = "Longitude"
	ColLatitude       = "Latitude"
	ColCuisines       = "Cuisines"
	ColAverageCost    = "Average Cost for two"
	ColPriceRange     = "Price range"
	ColRating         = "Aggregate rating"
	ColVotes          = "Votes"
)

// Derived columns and their display offsets.
const (
	ColCountryName = "Country Name"
	ColPriceTier   = "Cuisines Category Type"

	CountryNameOffset = 3
	PriceTierOffset   = 11
)

// RequiredColumns must all be present in the source header.
var RequiredColumns = []string{
	ColRestaurantID,
	ColRestaurantName,
	ColCountryCode,
	ColCity,
	ColLongitude,
	ColLatitude,
	ColCuisines,
	ColAverageCost,
	ColPriceRange,
	ColRating,
	ColVotes,
}

// Table is an immutable set of enriched restaurant records in a stable
// order. Filtering produces new tables; nothing mutates an existing one.
type Table struct {
	columns []string
	rows    []models.Restaurant
}

// NewTable builds a table over rows. columns is the source header that
// each row's Raw values follow.
func NewTable(columns []string, rows []models.Restaurant) *Table {
	if rows == nil {
		rows = []models.Restaurant{}
	}
	return &Table{
		columns: columns,
		rows:    rows,
	}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows exposes the records. Callers must treat the slice as read-only.
func (t *Table) Rows() []models.Restaurant {
	return t.rows
}

// Columns returns a copy of the source header.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Where returns a new table holding the records keep accepts, in order.
func (t *Table) Where(keep func(*models.Restaurant) bool) *Table {
	out := make([]models.Restaurant, 0, len(t.rows))
	for i := range t.rows {
		if keep(&t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return NewTable(t.columns, out)
}

// DisplayColumns is the source header with the country name and price tier
// columns inserted at their display offsets.
func (t *Table) DisplayColumns() []string {
	return withDerived(t.columns, ColCountryName, ColPriceTier)
}

// DisplayRow renders a record in DisplayColumns order.
func (t *Table) DisplayRow(r *models.Restaurant) []string {
	return withDerived(r.Raw, r.CountryName, string(r.PriceTier))
}

func withDerived(values []string, country, tier string) []string {
	out := make([]string, 0, len(values)+2)
	out = append(out, values...)
	out = insertAt(out, min(CountryNameOffset, len(out)), country)
	out = insertAt(out, min(PriceTierOffset, len(out)), tier)
	return out
}

func insertAt(s []string, i int, v string) []string {
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
