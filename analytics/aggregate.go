package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gourmetquest/dataset"
	"gourmetquest/models"
)

// Order is the direction of a ranking.
type Order int

const (
	Descending Order = iota
	Ascending
)

// ParseOrder accepts best/desc/"" for Descending and worst/asc for Ascending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "best", "desc":
		return Descending, nil
	case "worst", "asc":
		return Ascending, nil
	default:
		return Descending, fmt.Errorf("unknown order %q", s)
	}
}

const (
	// MinRestaurantEntries is the fewest listings a restaurant name needs to
	// be ranked in TopRestaurants.
	MinRestaurantEntries = 10

	// DefaultTopCuisines is the size of the preset cuisine selection.
	DefaultTopCuisines = 5

	topRestaurants      = 10
	topCuisineRatings   = 10
	topCities           = 10
	topCityRatings      = 5
	topCuisineDiversity = 10
)

// Round2 rounds to two decimals, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func newMean(sum float64, n int) models.Mean {
	if n == 0 {
		return models.Mean{}
	}
	v := sum / float64(n)
	return models.Mean{Value: v, Rounded: Round2(v)}
}

// accumulator collects per-key counts, sums and distinct sets in first-seen
// key order.
type accumulator struct {
	keys     []string
	count    map[string]int
	sum      map[string]float64
	distinct map[string]map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{
		count:    make(map[string]int),
		sum:      make(map[string]float64),
		distinct: make(map[string]map[string]struct{}),
	}
}

func (a *accumulator) add(key string, v float64) {
	if _, ok := a.count[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.count[key]++
	a.sum[key] += v
}

func (a *accumulator) addDistinct(key, v string) {
	a.add(key, 0)
	set, ok := a.distinct[key]
	if !ok {
		set = make(map[string]struct{})
		a.distinct[key] = set
	}
	set[v] = struct{}{}
}

func (a *accumulator) mean(key string) models.Mean {
	return newMean(a.sum[key], a.count[key])
}

// rank sorts by primary, then by key ascending so ties are deterministic,
// and truncates to limit when limit > 0.
func rank[T any](rows []T, order Order, value func(T) float64, key func(T) string, limit int) []T {
	sort.SliceStable(rows, func(i, j int) bool {
		vi, vj := value(rows[i]), value(rows[j])
		if vi != vj {
			if order == Ascending {
				return vi < vj
			}
			return vi > vj
		}
		return key(rows[i]) < key(rows[j])
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// Summarize computes the metric tiles over the whole table.
func Summarize(t *dataset.Table) models.Summary {
	ids := make(map[string]struct{})
	codes := make(map[int]struct{})
	cities := make(map[string]struct{})
	cuisines := make(map[string]struct{})
	var s models.Summary

	rows := t.Rows()
	for i := range rows {
		r := &rows[i]
		ids[r.ID] = struct{}{}
		codes[r.CountryCode] = struct{}{}
		cities[r.City] = struct{}{}
		for _, c := range r.Cuisines {
			cuisines[c] = struct{}{}
		}
		s.Votes += r.Votes
	}

	s.Restaurants = len(ids)
	s.Countries = len(codes)
	s.Cities = len(cities)
	s.CuisineTypes = len(cuisines)
	return s
}
