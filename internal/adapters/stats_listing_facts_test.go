package adapters

import (
	"context"
	"testing"

	"property_catalog_backend/internal/listings/domain"
	listingsrepo "property_catalog_backend/internal/listings/repository"
	listingsservice "property_catalog_backend/internal/listings/service"
	"property_catalog_backend/internal/listings/transport"
	statsrepo "property_catalog_backend/internal/stats/repository"
	statsservice "property_catalog_backend/internal/stats/service"
	"property_catalog_backend/platform/logger"
)

func TestPriceFilterFeedsStatsAverage(t *testing.T) {
	repo := listingsrepo.NewMemory()
	for _, price := range []float64{100, 200, 300, 400, 500} {
		l := visibleListing("Listing")
		l.Price = price
		repo.Put(l)
	}
	catalog := listingsservice.New(repo, nil, nil, listingsservice.DefaultSettings(), logger.Discard())

	page, err := catalog.ListCatalog(context.Background(), transport.ListingQuery{MinPrice: "150", MaxPrice: "450"}, domain.Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("expected 3 matches, got %d", page.Total)
	}

	matched := make([]domain.Listing, 0, len(page.Items))
	for _, item := range page.Items {
		for _, l := range repo.All() {
			if l.ID.String() == item.ID {
				matched = append(matched, l)
			}
		}
	}

	source := statsrepo.NewMemory(StatsListingFacts(matched), nil, nil)
	stats := statsservice.New(source, statsservice.DefaultSettings(), logger.Discard())
	report, err := stats.Report(context.Background(), 30, "active")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Prices.Count != 3 || report.Prices.Average != 300 {
		t.Fatalf("expected 3 listings averaging 300, got %+v", report.Prices)
	}
}

func TestStatsListingFactsActiveDefinition(t *testing.T) {
	approved := visibleListing("Approved")
	inactive := visibleListing("Inactive")
	inactive.IsActive = false
	pending := visibleListing("Pending")
	pending.ApprovalStatus = domain.ApprovalPending
	sold := visibleListing("Sold")
	sold.Status = domain.StatusSold

	facts := StatsListingFacts([]domain.Listing{approved, inactive, pending, sold})
	want := []bool{true, false, false, true}
	for i, f := range facts {
		if f.Active != want[i] {
			t.Fatalf("listing %d: expected active=%v, got %v", i, want[i], f.Active)
		}
	}
}
