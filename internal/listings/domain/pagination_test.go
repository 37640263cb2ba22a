package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var publicDefaults = PageDefaults{Limit: 12, MaxLimit: 100, SortFields: []string{"price", "createdAt", "sqft"}}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
		want Page
	}{
		{"defaults", PageRequest{}, Page{Number: 1, Limit: 12, Skip: 0, SortBy: "createdAt", Descending: true}},
		{"page clamp", PageRequest{Page: -3}, Page{Number: 1, Limit: 12, Skip: 0, SortBy: "createdAt", Descending: true}},
		{"skip", PageRequest{Page: 3, Limit: 10}, Page{Number: 3, Limit: 10, Skip: 20, SortBy: "createdAt", Descending: true}},
		{"limit upper clamp", PageRequest{Limit: 500}, Page{Number: 1, Limit: 100, Skip: 0, SortBy: "createdAt", Descending: true}},
		{"limit lower clamp", PageRequest{Limit: -4}, Page{Number: 1, Limit: 1, Skip: 0, SortBy: "createdAt", Descending: true}},
		{"asc", PageRequest{SortBy: "price", SortOrder: "asc"}, Page{Number: 1, Limit: 12, Skip: 0, SortBy: "price", Descending: false}},
		{"unknown order is asc", PageRequest{SortOrder: "sideways"}, Page{Number: 1, Limit: 12, Skip: 0, SortBy: "createdAt", Descending: false}},
		{"disallowed sort", PageRequest{SortBy: "title"}, Page{Number: 1, Limit: 12, Skip: 0, SortBy: "createdAt", Descending: true}},
		{"huge page", PageRequest{Page: 922337203685477581, Limit: 100}, Page{Number: MaxPageNumber, Limit: 100, Skip: (MaxPageNumber - 1) * 100, SortBy: "createdAt", Descending: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePage(tt.req, publicDefaults)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestNormalizePageSkipNeverNegative(t *testing.T) {
	for _, page := range []int{MaxPageNumber, MaxPageNumber + 1, 922337203685477581, int(^uint(0) >> 1)} {
		got := NormalizePage(PageRequest{Page: page, Limit: HardMaxLimit}, publicDefaults)
		if got.Skip < 0 {
			t.Fatalf("page %d: expected non-negative skip, got %d", page, got.Skip)
		}
	}
}

func TestNormalizePageAdminAllowsStorageSortFields(t *testing.T) {
	got := NormalizePage(PageRequest{SortBy: "title"}, PageDefaults{Limit: 20, MaxLimit: 100})
	if got.SortBy != "title" || got.Limit != 20 {
		t.Fatalf("expected title sort with admin limit 20, got %+v", got)
	}
	got = NormalizePage(PageRequest{SortBy: "password"}, PageDefaults{Limit: 20, MaxLimit: 100})
	if got.SortBy != DefaultSortField {
		t.Fatalf("expected unsupported field to fall back, got %q", got.SortBy)
	}
}

func TestNewResultMetadata(t *testing.T) {
	tests := []struct {
		page     int
		wantNext bool
		wantPrev bool
	}{
		{1, true, false},
		{2, true, true},
		{3, false, true},
	}

	for _, tt := range tests {
		page := NormalizePage(PageRequest{Page: tt.page, Limit: 12}, publicDefaults)
		got := NewResult([]int{1}, 25, page)
		if got.TotalPages != 3 {
			t.Fatalf("expected 3 total pages, got %d", got.TotalPages)
		}
		if got.HasNext != tt.wantNext || got.HasPrev != tt.wantPrev {
			t.Fatalf("page %d: expected next=%v prev=%v, got next=%v prev=%v", tt.page, tt.wantNext, tt.wantPrev, got.HasNext, got.HasPrev)
		}
	}
}

func TestNewResultEmpty(t *testing.T) {
	got := NewResult[int](nil, 0, NormalizePage(PageRequest{}, publicDefaults))
	if got.TotalPages != 0 || got.HasNext || got.HasPrev {
		t.Fatalf("expected empty metadata, got %+v", got)
	}
	if got.Items == nil {
		t.Fatal("expected empty items slice, got nil")
	}
}

func TestCompareIsTotal(t *testing.T) {
	a := publicListing(100)
	b := publicListing(100)
	if Compare(a, b, "price", false) == 0 {
		t.Fatal("expected id tie-break for equal prices")
	}

	b.CreatedAt = a.CreatedAt.Add(time.Hour)
	if Compare(a, b, "createdAt", true) <= 0 {
		t.Fatal("expected newer listing first when descending")
	}

	a.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b.ID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	b.CreatedAt = a.CreatedAt
	if Compare(a, b, "createdAt", true) >= 0 {
		t.Fatal("expected ascending id tie-break regardless of direction")
	}
}
