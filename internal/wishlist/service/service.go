// Package service implements the wishlist set operations.
package service

import (
	"context"

	"github.com/google/uuid"

	"property_catalog_backend/internal/events"
	"property_catalog_backend/internal/wishlist/ports"
	"property_catalog_backend/internal/wishlist/repository"
	"property_catalog_backend/internal/wishlist/transport"
	"property_catalog_backend/platform/apperr"
	"property_catalog_backend/platform/logger"
)

const (
	msgListingNotFound = "listing not found"
	msgNotInWishlist   = "listing not in wishlist"
	msgWishlistFailed  = "failed to update wishlist"
	msgLoadFailed      = "failed to load wishlist"
)

// Service manages saved-listing sets.
type Service struct {
	repo     repository.Repository
	listings ports.ListingReader
	bus      events.Bus
	log      *logger.Logger
}

// New creates a new wishlist service.
func New(repo repository.Repository, listings ports.ListingReader, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, listings: listings, bus: bus, log: log}
}

// Add saves a listing. A duplicate add succeeds without creating a second entry.
func (s *Service) Add(ctx context.Context, userID, listingID uuid.UUID) (transport.MembershipResponse, error) {
	if err := s.ensureExists(ctx, listingID); err != nil {
		return transport.MembershipResponse{}, err
	}

	added, err := s.repo.Add(ctx, userID, listingID)
	if err != nil {
		return transport.MembershipResponse{}, apperr.Opaque(err, "wishlist.Add", msgWishlistFailed)
	}

	if !added {
		return membership(listingID, false, true, transport.MessageAlreadySaved), nil
	}

	s.bus.Publish(ctx, events.WishlistItemAdded{
		BaseEvent: events.NewBaseEvent(),
		UserID:    userID,
		ListingID: listingID,
	})
	s.log.Info("wishlist item added", "userId", userID, "listingId", listingID)
	return membership(listingID, true, true, transport.MessageAdded), nil
}

// Remove deletes a listing from the set. Removing an absent id is NotFound.
func (s *Service) Remove(ctx context.Context, userID, listingID uuid.UUID) (transport.MembershipResponse, error) {
	removed, err := s.repo.Remove(ctx, userID, listingID)
	if err != nil {
		return transport.MembershipResponse{}, apperr.Opaque(err, "wishlist.Remove", msgWishlistFailed)
	}
	if !removed {
		return transport.MembershipResponse{}, apperr.NotFound(msgNotInWishlist)
	}

	s.publishRemoved(ctx, userID, listingID)
	return membership(listingID, false, false, transport.MessageRemoved), nil
}

// Toggle performs exactly one of add or remove and reports the resulting
// membership.
func (s *Service) Toggle(ctx context.Context, userID, listingID uuid.UUID) (transport.MembershipResponse, error) {
	member, err := s.repo.Contains(ctx, userID, listingID)
	if err != nil {
		return transport.MembershipResponse{}, apperr.Opaque(err, "wishlist.Toggle", msgWishlistFailed)
	}

	if !member {
		return s.Add(ctx, userID, listingID)
	}

	removed, err := s.repo.Remove(ctx, userID, listingID)
	if err != nil {
		return transport.MembershipResponse{}, apperr.Opaque(err, "wishlist.Toggle", msgWishlistFailed)
	}
	if removed {
		s.publishRemoved(ctx, userID, listingID)
	}
	return membership(listingID, false, false, transport.MessageRemoved), nil
}

// Clear empties the set.
func (s *Service) Clear(ctx context.Context, userID uuid.UUID) (transport.ClearResponse, error) {
	removed, err := s.repo.Clear(ctx, userID)
	if err != nil {
		return transport.ClearResponse{}, apperr.Opaque(err, "wishlist.Clear", msgWishlistFailed)
	}

	if len(removed) > 0 {
		s.bus.Publish(ctx, events.WishlistCleared{
			BaseEvent:  events.NewBaseEvent(),
			UserID:     userID,
			ListingIDs: removed,
		})
		s.log.Info("wishlist cleared", "userId", userID, "removed", len(removed))
	}
	return transport.ClearResponse{Removed: len(removed), Message: transport.MessageCleared}, nil
}

// List materialises the set in saved order. Ids that no longer resolve are
// omitted from the result and kept in storage. userID uuid.Nil is an
// anonymous caller and receives an empty list.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (transport.ListResponse, error) {
	if userID == uuid.Nil {
		return transport.ListResponse{
			Items:   []transport.SavedListingResponse{},
			Message: transport.MessageSignInRequired,
		}, nil
	}

	ids, err := s.repo.List(ctx, userID)
	if err != nil {
		return transport.ListResponse{}, apperr.Opaque(err, "wishlist.List", msgLoadFailed)
	}
	if len(ids) == 0 {
		return transport.ListResponse{Items: []transport.SavedListingResponse{}}, nil
	}

	found, err := s.listings.GetSavedListings(ctx, ids)
	if err != nil {
		return transport.ListResponse{}, apperr.Opaque(err, "wishlist.List", msgLoadFailed)
	}

	byID := make(map[uuid.UUID]ports.SavedListing, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}

	items := make([]transport.SavedListingResponse, 0, len(found))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			items = append(items, toResponse(l))
		}
	}
	return transport.ListResponse{Items: items, Count: len(items)}, nil
}

func (s *Service) ensureExists(ctx context.Context, listingID uuid.UUID) error {
	ok, err := s.listings.Exists(ctx, listingID)
	if err != nil {
		return apperr.Opaque(err, "wishlist.ensureExists", msgWishlistFailed)
	}
	if !ok {
		return apperr.NotFound(msgListingNotFound)
	}
	return nil
}

func (s *Service) publishRemoved(ctx context.Context, userID, listingID uuid.UUID) {
	s.bus.Publish(ctx, events.WishlistItemRemoved{
		BaseEvent: events.NewBaseEvent(),
		UserID:    userID,
		ListingID: listingID,
	})
	s.log.Info("wishlist item removed", "userId", userID, "listingId", listingID)
}

func membership(listingID uuid.UUID, added, member bool, message string) transport.MembershipResponse {
	return transport.MembershipResponse{
		ListingID: listingID.String(),
		Added:     added,
		IsMember:  member,
		Message:   message,
	}
}

func toResponse(l ports.SavedListing) transport.SavedListingResponse {
	return transport.SavedListingResponse{
		ID:           l.ID.String(),
		Title:        l.Title,
		Price:        l.Price,
		PropertyType: l.PropertyType,
		Intent:       l.Intent,
		City:         l.City,
		State:        l.State,
		Bedrooms:     l.Bedrooms,
		Bathrooms:    l.Bathrooms,
		Sqft:         l.AreaSqft,
		Status:       l.Status,
		ImageURL:     l.ImageURL,
	}
}
