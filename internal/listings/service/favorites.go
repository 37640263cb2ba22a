package service

import (
	"context"

	"github.com/google/uuid"

	"property_catalog_backend/platform/apperr"
)

// AdjustFavorites shifts the favorite counter of a listing. Missing listings
// are ignored since wishlists may hold dangling ids.
func (s *Service) AdjustFavorites(ctx context.Context, listingID uuid.UUID, delta int) error {
	err := s.repo.AdjustFavorites(ctx, listingID, delta)
	if err != nil && !apperr.Is(err, apperr.KindNotFound) {
		s.log.Warn("favorite count update failed", "listing_id", listingID, "delta", delta, "error", err)
		return err
	}
	return nil
}
