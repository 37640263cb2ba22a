package domain

import (
	"testing"
	"time"
)

func facts(prices ...float64) []ListingFacts {
	out := make([]ListingFacts, 0, len(prices))
	for _, p := range prices {
		out = append(out, ListingFacts{Price: p, Active: true})
	}
	return out
}

func TestSummarizePricesEmpty(t *testing.T) {
	r := SummarizePrices(nil)
	if r.Count != 0 || r.Average != 0 || r.Sum != 0 || r.Min != 0 || r.Max != 0 {
		t.Fatalf("expected zero rollup, got %+v", r)
	}
}

func TestSummarizePrices(t *testing.T) {
	r := SummarizePrices(facts(200, 300, 400))
	if r.Count != 3 {
		t.Fatalf("expected count 3, got %d", r.Count)
	}
	if r.Average != 300 {
		t.Fatalf("expected average 300, got %v", r.Average)
	}
	if r.Min != 200 || r.Max != 400 || r.Sum != 900 {
		t.Fatalf("expected min 200 max 400 sum 900, got %+v", r)
	}
}

func TestSummarizePricesRoundsAverage(t *testing.T) {
	r := SummarizePrices(facts(100, 100, 101))
	if r.Average != 100.33 {
		t.Fatalf("expected 100.33, got %v", r.Average)
	}
}

func TestGroupByOrdersByCountThenKey(t *testing.T) {
	listings := []ListingFacts{
		{City: "Austin", Price: 100},
		{City: "Boston", Price: 300},
		{City: "Boston", Price: 500},
		{City: "Denver", Price: 200},
	}

	groups := GroupBy(listings, ByCity, 2)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "Boston" || groups[0].Count != 2 || groups[0].AveragePrice != 400 {
		t.Fatalf("expected Boston x2 avg 400 first, got %+v", groups[0])
	}
	if groups[1].Key != "Austin" {
		t.Fatalf("expected Austin to win the tie on key, got %s", groups[1].Key)
	}
}

func TestGroupByEmpty(t *testing.T) {
	if groups := GroupBy(nil, ByPropertyType, 0); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestMonthlySeriesAscendingWithinWindow(t *testing.T) {
	since := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	series := MonthlySeries(times, since)
	if len(series) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(series))
	}
	if series[0].Month != 1 || series[0].Count != 1 {
		t.Fatalf("expected January x1 first, got %+v", series[0])
	}
	if series[1].Month != 3 || series[1].Count != 2 {
		t.Fatalf("expected March x2 second, got %+v", series[1])
	}
}

func TestFilterScope(t *testing.T) {
	listings := []ListingFacts{{Active: true}, {Active: false}}
	if n := len(FilterScope(listings, ScopeActive)); n != 1 {
		t.Fatalf("expected 1 active listing, got %d", n)
	}
	if n := len(FilterScope(listings, ScopeAll)); n != 2 {
		t.Fatalf("expected 2 listings in scope all, got %d", n)
	}
}

func TestCountListings(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	listings := []ListingFacts{
		{Active: true, Featured: true, CreatedAt: since.AddDate(0, 1, 0)},
		{Active: false, CreatedAt: since.AddDate(0, -1, 0)},
	}
	c := CountListings(listings, since)
	if c.Total != 2 || c.Active != 1 || c.Featured != 1 || c.NewInWindow != 1 {
		t.Fatalf("unexpected counts %+v", c)
	}
}
