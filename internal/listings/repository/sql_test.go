package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"property_catalog_backend/internal/listings/domain"
)

func TestCompileWhereAnonymousVisibility(t *testing.T) {
	where, args, err := compileWhere(domain.Build(domain.Criteria{}, domain.Anonymous()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "(approval_status = $1 AND is_active = $2 AND status = $3)"
	if where != want {
		t.Fatalf("expected %q, got %q", want, where)
	}
	if len(args) != 3 || args[0] != "approved" || args[1] != true || args[2] != "Available" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestCompileWhereMatchAll(t *testing.T) {
	where, args, err := compileWhere(domain.And())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if where != "TRUE" || len(args) != 0 {
		t.Fatalf("expected TRUE without args, got %q %v", where, args)
	}
}

func TestCompileWhereSearchAndRanges(t *testing.T) {
	admin := domain.Caller{UserID: uuid.New(), Role: domain.RoleAdmin}
	minPrice, maxArea := 150.0, 2000.5
	p := domain.Build(domain.Criteria{
		Search:   "50%_off",
		MinPrice: &minPrice,
		MaxArea:  &maxArea,
		Bedrooms: domain.ParseBedrooms("4+"),
	}, admin)

	where, args, err := compileWhere(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{
		"(title ILIKE $1 OR description ILIKE $2 OR address ILIKE $3 OR city ILIKE $4 OR state ILIKE $5)",
		"price >= $6::numeric",
		"area_sqft <= $7::numeric",
		"bedrooms >= $8",
	} {
		if !strings.Contains(where, fragment) {
			t.Fatalf("expected %q in %q", fragment, where)
		}
	}
	if args[0] != `%50\%\_off%` {
		t.Fatalf("expected escaped like pattern, got %v", args[0])
	}
	if len(args) != 8 {
		t.Fatalf("expected 8 args, got %d", len(args))
	}
}

func TestCompileWhereRejectsUnknownField(t *testing.T) {
	if _, _, err := compileWhere(domain.Eq("password", "x")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestOrderBy(t *testing.T) {
	tests := []struct {
		page domain.Page
		want string
	}{
		{domain.Page{SortBy: "price"}, "price ASC, id ASC"},
		{domain.Page{SortBy: "sqft", Descending: true}, "area_sqft DESC, id ASC"},
		{domain.Page{SortBy: "views", Descending: true}, "view_count DESC, id ASC"},
		{domain.Page{SortBy: "unknown", Descending: true}, "created_at DESC, id ASC"},
	}
	for _, tt := range tests {
		if got := orderBy(tt.page); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}
