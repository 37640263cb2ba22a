package domain

import (
	"sort"
	"time"
)

// ListingFacts is the slice of a listing the rollups read.
type ListingFacts struct {
	PropertyType string
	City         string
	Price        float64
	Views        int64
	Featured     bool
	Active       bool
	CreatedAt    time.Time
}

// InScope reports whether the listing feeds rollups of the given scope.
func (f ListingFacts) InScope(scope Scope) bool {
	return scope == ScopeAll || f.Active
}

// FilterScope keeps the listings that belong to scope.
func FilterScope(listings []ListingFacts, scope Scope) []ListingFacts {
	out := make([]ListingFacts, 0, len(listings))
	for _, l := range listings {
		if l.InScope(scope) {
			out = append(out, l)
		}
	}
	return out
}

// SummarizePrices computes the price rollup. An empty input yields zeros.
func SummarizePrices(listings []ListingFacts) PriceRollup {
	var r PriceRollup
	for i, l := range listings {
		r.Count++
		r.Sum += l.Price
		r.TotalViews += l.Views
		if i == 0 || l.Price < r.Min {
			r.Min = l.Price
		}
		if i == 0 || l.Price > r.Max {
			r.Max = l.Price
		}
	}
	if r.Count > 0 {
		r.Average = Round2(r.Sum / float64(r.Count))
	}
	return r
}

// GroupBy buckets listings by key, ordered by count descending then key
// ascending. limit <= 0 keeps every bucket.
func GroupBy(listings []ListingFacts, key func(ListingFacts) string, limit int) []Group {
	type acc struct {
		count int
		sum   float64
	}
	buckets := make(map[string]*acc)
	for _, l := range listings {
		k := key(l)
		b, ok := buckets[k]
		if !ok {
			b = &acc{}
			buckets[k] = b
		}
		b.count++
		b.sum += l.Price
	}

	groups := make([]Group, 0, len(buckets))
	for k, b := range buckets {
		groups = append(groups, Group{Key: k, Count: b.count, AveragePrice: Round2(b.sum / float64(b.count))})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

// ByPropertyType is the key function for the property type rollup.
func ByPropertyType(l ListingFacts) string { return l.PropertyType }

// ByCity is the key function for the city rollup.
func ByCity(l ListingFacts) string { return l.City }

// MonthlySeries counts timestamps at or after since per calendar month in
// UTC, ascending.
func MonthlySeries(times []time.Time, since time.Time) []MonthBucket {
	counts := make(map[[2]int]int)
	for _, t := range times {
		if t.Before(since) {
			continue
		}
		u := t.UTC()
		counts[[2]int{u.Year(), int(u.Month())}]++
	}

	series := make([]MonthBucket, 0, len(counts))
	for ym, n := range counts {
		series = append(series, MonthBucket{Year: ym[0], Month: ym[1], Count: n})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Month < series[j].Month
	})
	return series
}

// CountSince returns the total and the number of timestamps at or after since.
func CountSince(times []time.Time, since time.Time) Counts {
	c := Counts{Total: len(times)}
	for _, t := range times {
		if !t.Before(since) {
			c.NewInWindow++
		}
	}
	return c
}

// CountListings builds the listing overview counts.
func CountListings(listings []ListingFacts, since time.Time) ListingCounts {
	var c ListingCounts
	for _, l := range listings {
		c.Total++
		if l.Active {
			c.Active++
		}
		if l.Featured {
			c.Featured++
		}
		if !l.CreatedAt.Before(since) {
			c.NewInWindow++
		}
	}
	return c
}
