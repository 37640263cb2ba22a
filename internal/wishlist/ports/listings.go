// Package ports defines what the wishlist domain needs from the catalog.
// The wishlist never imports the listings context directly.
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SavedListing is the catalog data shown for a wishlist entry.
type SavedListing struct {
	ID           uuid.UUID
	Title        string
	Price        float64
	PropertyType string
	Intent       string
	City         string
	State        string
	Bedrooms     int
	Bathrooms    int
	AreaSqft     int
	Status       string
	ImageURL     string
	CreatedAt    time.Time
}

// ListingReader resolves wishlist ids against the catalog.
type ListingReader interface {
	// Exists reports whether the id resolves to a catalog listing, whatever
	// its approval or market status.
	Exists(ctx context.Context, listingID uuid.UUID) (bool, error)
	// GetSavedListings returns the listings that still exist. Unknown ids are
	// silently omitted and the order is unspecified.
	GetSavedListings(ctx context.Context, listingIDs []uuid.UUID) ([]SavedListing, error)
}
