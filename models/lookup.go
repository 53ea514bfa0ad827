package models

import "sort"

// PriceTier is the coarse price label derived from a price range.
type PriceTier string

const (
	PriceTierCheap     PriceTier = "cheap"
	PriceTierNormal    PriceTier = "normal"
	PriceTierExpensive PriceTier = "expensive"
	PriceTierGourmet   PriceTier = "gourmet"
)

// PriceTierFor maps a price range to its tier. Every value other than 1, 2
// and 3 is gourmet.
func PriceTierFor(priceRange int) PriceTier {
	switch priceRange {
	case 1:
		return PriceTierCheap
	case 2:
		return PriceTierNormal
	case 3:
		return PriceTierExpensive
	default:
		return PriceTierGourmet
	}
}

// countries is read-only after package init.
var countries = map[int]string{
	1:   "India",
	14:  "Australia",
	30:  "Brazil",
	37:  "Canada",
	94:  "Indonesia",
	148: "New Zeland",
	162: "Philippines",
	166: "Qatar",
	184: "Singapure",
	189: "South Africa",
	191: "Sri Lanka",
	208: "Turkey",
	214: "United Arab Emirates",
	215: "England",
	216: "United States of America",
}

// CountryName returns the name for a country code. Unknown codes yield ""
// and false.
func CountryName(code int) (string, bool) {
	name, ok := countries[code]
	return name, ok
}

// CountryNames returns every known country name, sorted.
func CountryNames() []string {
	names := make([]string, 0, len(countries))
	for _, name := range countries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
