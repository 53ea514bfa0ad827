package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"gourmetquest/models"
)

// Enrich converts clean raw rows into typed records and derives the country
// name, the price tier and the parsed cuisine list. Rows whose numeric
// columns do not parse are skipped and counted in the returned int.
func Enrich(raw *RawTable) (*Table, int, error) {
	idx, err := columnIndex(raw.Header)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]models.Restaurant, 0, len(raw.Rows))
	invalid := 0
	for _, values := range raw.Rows {
		r, err := parseRecord(values, idx)
		if err != nil {
			invalid++
			continue
		}
		rows = append(rows, r)
	}

	return NewTable(raw.Header, rows), invalid, nil
}

func parseRecord(values []string, idx map[string]int) (models.Restaurant, error) {
	get := func(col string) string {
		return strings.TrimSpace(values[idx[col]])
	}

	var r models.Restaurant
	var err error

	if r.CountryCode, err = parseInt(get(ColCountryCode)); err != nil {
		return r, fmt.Errorf("%s: %w", ColCountryCode, err)
	}
	if r.Latitude, err = strconv.ParseFloat(get(ColLatitude), 64); err != nil {
		return r, fmt.Errorf("%s: %w", ColLatitude, err)
	}
	if r.Longitude, err = strconv.ParseFloat(get(ColLongitude), 64); err != nil {
		return r, fmt.Errorf("%s: %w", ColLongitude, err)
	}
	if r.PriceRange, err = parseInt(get(ColPriceRange)); err != nil {
		return r, fmt.Errorf("%s: %w", ColPriceRange, err)
	}
	if r.AverageCostForTwo, err = strconv.ParseFloat(get(ColAverageCost), 64); err != nil {
		return r, fmt.Errorf("%s: %w", ColAverageCost, err)
	}
	if r.AggregateRating, err = strconv.ParseFloat(get(ColRating), 64); err != nil {
		return r, fmt.Errorf("%s: %w", ColRating, err)
	}
	if r.Votes, err = parseInt(get(ColVotes)); err != nil {
		return r, fmt.Errorf("%s: %w", ColVotes, err)
	}

	r.ID = get(ColRestaurantID)
	r.RestaurantName = get(ColRestaurantName)
	r.City = get(ColCity)
	r.CuisinesRaw = get(ColCuisines)
	r.Cuisines = SplitCuisines(r.CuisinesRaw)
	r.CountryName, _ = models.CountryName(r.CountryCode)
	r.PriceTier = models.PriceTierFor(r.PriceRange)
	r.Raw = values

	return r, nil
}

// SplitCuisines splits a comma separated cuisine list into trimmed labels.
// A value that yields no label at all is kept whole as a single label.
func SplitCuisines(raw string) []string {
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	if len(labels) == 0 {
		return []string{raw}
	}
	return labels
}

// parseInt accepts integers and integral floats such as "4.0".
func parseInt(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}
