package models

// Restaurant is one cleaned and enriched listing of the canonical table.
// Raw keeps the source values in source column order so the record can be
// exported exactly as it was read.
type Restaurant struct {
	ID                string    `json:"restaurant_id"`
	RestaurantName    string    `json:"restaurant_name"`
	CountryCode       int       `json:"country_code"`
	CountryName       string    `json:"country_name"`
	City              string    `json:"city"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	CuisinesRaw       string    `json:"cuisines_raw"`
	Cuisines          []string  `json:"cuisines"`
	PriceRange        int       `json:"price_range"`
	PriceTier         PriceTier `json:"price_tier"`
	AverageCostForTwo float64   `json:"average_cost_for_two"`
	AggregateRating   float64   `json:"aggregate_rating"`
	Votes             int       `json:"votes"`

	Raw []string `json:"-"`
}

// CountryKnown reports whether the country code matched the lookup table.
func (r *Restaurant) CountryKnown() bool {
	return r.CountryName != ""
}

// HasCuisine reports whether any of the restaurant's labels is in selected.
func (r *Restaurant) HasCuisine(selected map[string]struct{}) bool {
	for _, c := range r.Cuisines {
		if _, ok := selected[c]; ok {
			return true
		}
	}
	return false
}
