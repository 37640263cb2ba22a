package domain

import (
	"math"
	"testing"
)

func TestPriceBand(t *testing.T) {
	lo, hi := PriceBand(1000, DefaultSimilarBand)
	if math.Abs(lo-700) > 1e-9 || math.Abs(hi-1300) > 1e-9 {
		t.Fatalf("expected [700,1300], got [%v,%v]", lo, hi)
	}
}

func TestSimilarToFiltersComparables(t *testing.T) {
	source := publicListing(1000)

	inBand := publicListing(1250)
	lowEdge := publicListing(700)
	tooExpensive := publicListing(1400)
	otherCity := publicListing(1000)
	otherCity.Location.City = "Denver"
	otherType := publicListing(1000)
	otherType.PropertyType = PropertyCondo
	sold := publicListing(1000)
	sold.Status = StatusSold

	catalog := []Listing{source, inBand, lowEdge, tooExpensive, otherCity, otherType, sold}
	got := filter(catalog, SimilarTo(source, DefaultSimilarBand))

	if len(got) != 2 {
		t.Fatalf("expected 2 comparables, got %d", len(got))
	}
	lo, hi := PriceBand(source.Price, DefaultSimilarBand)
	for _, l := range got {
		if l.ID == source.ID {
			t.Fatal("expected source listing to be excluded")
		}
		if l.Price < lo || l.Price > hi {
			t.Fatalf("expected price within band, got %v", l.Price)
		}
		if l.PropertyType != source.PropertyType || l.Location.City != source.Location.City {
			t.Fatalf("expected same type and city, got %+v", l)
		}
	}
}

func TestSimilarToNoMatchesIsEmpty(t *testing.T) {
	source := publicListing(1000)
	if got := filter([]Listing{source}, SimilarTo(source, DefaultSimilarBand)); len(got) != 0 {
		t.Fatalf("expected no comparables, got %d", len(got))
	}
}

func TestRestrictAddsVisibilityForAnonymous(t *testing.T) {
	source := publicListing(1000)
	pending := publicListing(1000)
	pending.ApprovalStatus = ApprovalPending

	p := Restrict(SimilarTo(source, DefaultSimilarBand), Anonymous())
	if p.Matches(pending) {
		t.Fatal("expected pending listing hidden from anonymous similar results")
	}
	if !Restrict(SimilarTo(source, DefaultSimilarBand), adminCaller()).Matches(pending) {
		t.Fatal("expected admin to see pending comparable")
	}
}
