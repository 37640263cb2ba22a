package service

import (
	"context"
	"testing"
	"time"

	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/internal/listings/repository"
)

func TestSimilarReturnsComparablesNewestFirst(t *testing.T) {
	mem := repository.NewMemory()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	source := listing(1000)
	source.CreatedAt = base
	source = mem.Put(source)

	for i, price := range []float64{800, 1100, 1300, 1301, 650} {
		l := listing(price)
		l.CreatedAt = base.Add(time.Duration(i+1) * time.Hour)
		mem.Put(l)
	}
	hidden := listing(1000)
	hidden.ApprovalStatus = domain.ApprovalPending
	mem.Put(hidden)

	svc := newTestService(mem, nil)
	got, err := svc.Similar(context.Background(), source.ID, 0, domain.Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 comparables, got %d", len(got))
	}
	if got[0].Price != 1300 || got[2].Price != 800 {
		t.Fatalf("expected newest first, got %v then %v", got[0].Price, got[2].Price)
	}
	for _, l := range got {
		if l.ID == source.ID.String() {
			t.Fatal("expected source listing excluded")
		}
		if l.Price < 700 || l.Price > 1300 {
			t.Fatalf("expected price within band, got %v", l.Price)
		}
	}
}

func TestSimilarRespectsLimitAndEmpty(t *testing.T) {
	mem := repository.NewMemory()
	source := mem.Put(listing(1000))
	for i := 0; i < 10; i++ {
		mem.Put(listing(1000))
	}
	svc := newTestService(mem, nil)

	got, err := svc.Similar(context.Background(), source.ID, 0, domain.Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != domain.DefaultSimilarLimit {
		t.Fatalf("expected default limit %d, got %d", domain.DefaultSimilarLimit, len(got))
	}

	lonely := listing(1000)
	lonely.Location.City = "Nowhere"
	lonely = mem.Put(lonely)
	got, err = svc.Similar(context.Background(), lonely.ID, 4, domain.Anonymous())
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result without error, got %d %v", len(got), err)
	}
}

func TestFeaturedOnlyPublicFeatured(t *testing.T) {
	mem := repository.NewMemory()
	featured := listing(100)
	featured.Featured = true
	mem.Put(featured)
	hiddenFeatured := featured
	hiddenFeatured.IsActive = false
	mem.Put(hiddenFeatured)
	mem.Put(listing(100))

	got, err := newTestService(mem, nil).Featured(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !got[0].Featured || !got[0].IsActive {
		t.Fatalf("expected one visible featured listing, got %+v", got)
	}
}
