package models

// Mean carries a full-precision average and the copy rounded to two decimals
// shown by the dashboard.
type Mean struct {
	Value   float64 `json:"value"`
	Rounded float64 `json:"rounded"`
}

// CuisineCount is a cuisine label with its occurrence count after expansion.
type CuisineCount struct {
	Cuisine string `json:"cuisine"`
	Count   int    `json:"count"`
}

// CuisineRating is the mean rating of all expanded rows sharing a label.
type CuisineRating struct {
	Cuisine string `json:"cuisine"`
	Rating  Mean   `json:"rating"`
}

// RestaurantRanking groups listings by restaurant name. Country, city and
// cuisines come from the first listing seen for that name.
type RestaurantRanking struct {
	RestaurantName string `json:"restaurant_name"`
	Rating         Mean   `json:"rating"`
	Entries        int    `json:"entries"`
	CountryName    string `json:"country_name"`
	City           string `json:"city"`
	Cuisines       string `json:"cuisines"`
}

// CountryCount is a per-country count (restaurants or distinct cities).
type CountryCount struct {
	CountryName string `json:"country_name"`
	Count       int    `json:"count"`
}

// CountryMean is a per-country average (rating or cost for two).
type CountryMean struct {
	CountryName string `json:"country_name"`
	Mean        Mean   `json:"mean"`
}

// CityCount is a per-city count (restaurants or distinct cuisines).
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// CityRating is the mean rating of a city.
type CityRating struct {
	City   string `json:"city"`
	Rating Mean   `json:"rating"`
}

// Summary holds the metric tiles of the home view.
type Summary struct {
	Restaurants  int `json:"restaurants"`
	Countries    int `json:"countries"`
	Cities       int `json:"cities"`
	Votes        int `json:"votes"`
	CuisineTypes int `json:"cuisine_types"`
}

// CityLocation is one map marker: the median position of a (city, country)
// group.
type CityLocation struct {
	City        string  `json:"city"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Restaurants int     `json:"restaurants"`
	Geohash     string  `json:"geohash"`
	CellToken   string  `json:"cell_token"`
	Valid       bool    `json:"valid"`
}

// LatLng is a plain coordinate pair.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapView is everything the map collaborator needs to draw markers.
type MapView struct {
	Center  LatLng         `json:"center"`
	Markers []CityLocation `json:"markers"`
}
