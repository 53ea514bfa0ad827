package analytics

import (
	"gourmetquest/dataset"
	"gourmetquest/models"
)

// CuisineRow is one (record, cuisine label) pair of the expanded table.
type CuisineRow struct {
	Cuisine    string
	Row        int
	Restaurant *models.Restaurant
}

// ExpandCuisines unpivots the cuisine list: a record with k labels becomes
// k rows, each pointing back at its record.
func ExpandCuisines(t *dataset.Table) []CuisineRow {
	rows := t.Rows()
	n := 0
	for i := range rows {
		n += len(rows[i].Cuisines)
	}

	out := make([]CuisineRow, 0, n)
	for i := range rows {
		for _, c := range rows[i].Cuisines {
			out = append(out, CuisineRow{Cuisine: c, Row: i, Restaurant: &rows[i]})
		}
	}
	return out
}
