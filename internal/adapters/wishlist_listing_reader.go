package adapters

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"property_catalog_backend/internal/listings/domain"
	listingsrepo "property_catalog_backend/internal/listings/repository"
	"property_catalog_backend/internal/wishlist/ports"
	"property_catalog_backend/platform/apperr"
)

// WishlistListingReader adapts the listings repository for the wishlist
// domain, satisfying ports.ListingReader.
type WishlistListingReader struct {
	repo listingsrepo.Reader
}

// NewWishlistListingReader creates a new listing reader adapter.
func NewWishlistListingReader(repo listingsrepo.Reader) *WishlistListingReader {
	return &WishlistListingReader{repo: repo}
}

var _ ports.ListingReader = (*WishlistListingReader)(nil)

// Exists reports whether the listing resolves. Membership does not follow
// the listing lifecycle, so status and approval are not checked.
func (a *WishlistListingReader) Exists(ctx context.Context, listingID uuid.UUID) (bool, error) {
	_, err := a.repo.GetByID(ctx, listingID)
	if apperr.Is(err, apperr.KindNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("wishlist adapter: get listing: %w", err)
	}
	return true, nil
}

// GetSavedListings resolves ids to summaries. Unknown ids are silently omitted.
func (a *WishlistListingReader) GetSavedListings(ctx context.Context, listingIDs []uuid.UUID) ([]ports.SavedListing, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	listings, err := a.repo.GetByIDs(ctx, listingIDs)
	if err != nil {
		return nil, fmt.Errorf("wishlist adapter: get listings: %w", err)
	}

	out := make([]ports.SavedListing, 0, len(listings))
	for _, l := range listings {
		out = append(out, toSavedListing(l))
	}
	return out, nil
}

func toSavedListing(l domain.Listing) ports.SavedListing {
	saved := ports.SavedListing{
		ID:           l.ID,
		Title:        l.Title,
		Price:        l.Price,
		PropertyType: string(l.PropertyType),
		Intent:       string(l.Intent),
		City:         l.Location.City,
		State:        l.Location.State,
		Bedrooms:     l.Bedrooms,
		Bathrooms:    l.Bathrooms,
		AreaSqft:     l.AreaSqft,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
	}
	if len(l.Images) > 0 {
		saved.ImageURL = l.Images[0].URL
	}
	return saved
}
