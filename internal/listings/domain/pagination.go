package domain

import (
	"cmp"
	"slices"
	"strings"

	"property_catalog_backend/platform/paging"
)

const (
	// DefaultSortField is used when no or an unknown sort field is requested.
	DefaultSortField = "createdAt"
	// HardMaxLimit caps every page size.
	HardMaxLimit = 100
	// MaxPageNumber caps the page number so the skip offset cannot overflow.
	MaxPageNumber = paging.MaxPage

	sortDesc = "desc"
)

// StorageSortFields are the sort names the storage layer understands.
var StorageSortFields = []string{"createdAt", "updatedAt", "price", "sqft", "title", "bedrooms", "views"}

// PageRequest is the raw pagination input. Zero values mean absent.
type PageRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// PageDefaults carries the caller-class defaults for one endpoint.
type PageDefaults struct {
	Limit      int
	MaxLimit   int
	SortFields []string
}

// Page is the canonical pagination window.
type Page struct {
	Number     int
	Limit      int
	Skip       int
	SortBy     string
	Descending bool
}

// NormalizePage clamps and defaults a page request. It never fails.
func NormalizePage(req PageRequest, defaults PageDefaults) Page {
	maxLimit := defaults.MaxLimit
	if maxLimit < 1 || maxLimit > HardMaxLimit {
		maxLimit = HardMaxLimit
	}
	defaultLimit := defaults.Limit
	if defaultLimit < 1 {
		defaultLimit = 12
	}

	window := paging.NewWindow(req.Page, req.Limit, defaultLimit, maxLimit)

	sortBy := strings.TrimSpace(req.SortBy)
	allowed := defaults.SortFields
	if len(allowed) == 0 {
		allowed = StorageSortFields
	}
	if sortBy == "" || !slices.Contains(allowed, sortBy) {
		sortBy = DefaultSortField
	}

	order := strings.TrimSpace(req.SortOrder)

	return Page{
		Number:     window.Page,
		Limit:      window.Limit,
		Skip:       window.Offset,
		SortBy:     sortBy,
		Descending: order == "" || order == sortDesc,
	}
}

// Result is a page of items plus its pagination metadata.
type Result[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewResult computes the pagination metadata for a fetched window.
func NewResult[T any](items []T, total int, page Page) Result[T] {
	if items == nil {
		items = []T{}
	}
	meta := paging.NewMeta(total, page.Number, page.Limit)
	return Result[T]{
		Items:      items,
		Total:      total,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: meta.TotalPages,
		HasNext:    meta.HasNext,
		HasPrev:    meta.HasPrev,
	}
}

// Compare orders two listings by a sort field, ties broken by id so the order
// is total.
func Compare(a, b Listing, sortBy string, descending bool) int {
	var c int
	switch sortBy {
	case "price":
		c = cmp.Compare(a.Price, b.Price)
	case "sqft":
		c = cmp.Compare(a.AreaSqft, b.AreaSqft)
	case "bedrooms":
		c = cmp.Compare(a.Bedrooms, b.Bedrooms)
	case "views":
		c = cmp.Compare(a.ViewCount, b.ViewCount)
	case "title":
		c = strings.Compare(a.Title, b.Title)
	case "updatedAt":
		c = a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if descending {
		c = -c
	}
	if c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
