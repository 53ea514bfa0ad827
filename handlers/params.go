package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gourmetquest/analytics"
)

const (
	DefaultTopN        = 10
	MaxTopN            = 100
	DefaultSuggestions = 20
)

// FilterParams is the filter selection of one dashboard request.
type FilterParams struct {
	Countries []string
	Cuisines  []string
	// CuisinesSet is false when the request carried no cuisines parameter at
	// all, in which case the view applies its default selection.
	CuisinesSet bool
	N           int
	Query       string
}

// ParseFilterParams extracts and normalizes the dashboard filters from the URL query.
func ParseFilterParams(query url.Values) (FilterParams, error) {
	p := FilterParams{
		Countries: listParam(query, "countries"),
		N:         DefaultTopN,
		Query:     strings.TrimSpace(query.Get("q")),
	}

	if _, ok := query["cuisines"]; ok {
		p.CuisinesSet = true
		p.Cuisines = listParam(query, "cuisines")
	}

	if nStr := query.Get("n"); nStr != "" {
		n, err := strconv.Atoi(nStr)
		if err != nil || n <= 0 {
			return p, fmt.Errorf("n must be a positive integer, got %q", nStr)
		}
		if n > MaxTopN {
			n = MaxTopN
		}
		p.N = n
	}

	return p, nil
}

// ParseOrderParam reads the ranking direction of the ratings endpoints.
func ParseOrderParam(query url.Values) (analytics.Order, error) {
	return analytics.ParseOrder(query.Get("order"))
}

// listParam merges repeated and comma-separated values of key.
func listParam(query url.Values, key string) []string {
	var out []string
	for _, v := range strings.Split(strings.Join(query[key], ","), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
