package service

import (
	"context"

	"github.com/google/uuid"

	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/internal/listings/transport"
	"property_catalog_backend/platform/apperr"
	"property_catalog_backend/platform/sanitize"
)

// Create stores a manually submitted listing. Agent submissions start
// pending review; administrators may set the approval state directly.
func (s *Service) Create(ctx context.Context, req transport.CreateListingRequest, caller domain.Caller) (transport.ListingResponse, error) {
	if !caller.CanSeeUnpublished() {
		return transport.ListingResponse{}, apperr.Forbidden("only agents and administrators can create listings")
	}

	l := listingFromRequest(req)
	l.Source = domain.SourceManual
	owner := caller.UserID
	l.AgentID = &owner

	if caller.IsAdmin() {
		if approval := domain.ParseApprovalStatus(req.ApprovalStatus); approval != "" {
			l.ApprovalStatus = approval
		} else {
			l.ApprovalStatus = domain.ApprovalApproved
		}
		if req.IsActive != nil {
			l.IsActive = *req.IsActive
		}
	} else {
		l.ApprovalStatus = domain.ApprovalPending
	}

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return transport.ListingResponse{}, apperr.Opaque(err, "listings.Create", msgSaveFailed)
	}

	s.log.Info("listing created", "id", created.ID, "agentId", owner, "approval", created.ApprovalStatus)
	return transport.ToListingResponse(created), nil
}

// Ingest stores a listing received from an external feed. Ingested listings
// are always pending and inactive until reviewed.
func (s *Service) Ingest(ctx context.Context, req transport.CreateListingRequest) (transport.ListingResponse, error) {
	l := listingFromRequest(req)
	l.Source = domain.SourceAPI
	l.ApprovalStatus = domain.ApprovalPending
	l.IsActive = false

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return transport.ListingResponse{}, apperr.Opaque(err, "listings.Ingest", msgSaveFailed)
	}

	s.log.Info("listing ingested", "id", created.ID)
	return transport.ToListingResponse(created), nil
}

// Import stores a fixture listing as-is with source import.
func (s *Service) Import(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	l.Source = domain.SourceImport
	if l.Status == "" {
		l.Status = domain.StatusAvailable
	}
	if l.ApprovalStatus == "" {
		l.ApprovalStatus = domain.ApprovalApproved
	}
	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return domain.Listing{}, apperr.Opaque(err, "listings.Import", msgSaveFailed)
	}
	return created, nil
}

// Update applies a partial update. Only the owning agent or an
// administrator may update a listing.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateListingRequest, caller domain.Caller) (transport.ListingResponse, error) {
	l, err := s.loadManaged(ctx, id, caller)
	if err != nil {
		return transport.ListingResponse{}, err
	}

	applyUpdate(&l, req)

	updated, err := s.repo.Update(ctx, l)
	if err != nil {
		return transport.ListingResponse{}, apperr.Opaque(err, "listings.Update", msgSaveFailed)
	}

	s.log.Info("listing updated", "id", updated.ID)
	return transport.ToListingResponse(updated), nil
}

// Delete removes a listing. Saved wishlist ids pointing at it stay behind
// and are dropped when wishlists are materialised.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, caller domain.Caller) error {
	if _, err := s.loadManaged(ctx, id, caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Opaque(err, "listings.Delete", msgSaveFailed)
	}

	s.log.Info("listing deleted", "id", id)
	return nil
}

// Review sets the moderation state of a listing.
func (s *Service) Review(ctx context.Context, id uuid.UUID, req transport.ReviewListingRequest, caller domain.Caller) (transport.ListingResponse, error) {
	if !caller.IsAdmin() {
		return transport.ListingResponse{}, apperr.Forbidden("only administrators can review listings")
	}
	approval := domain.ParseApprovalStatus(req.ApprovalStatus)
	if approval == "" {
		return transport.ListingResponse{}, apperr.Validation("unknown approval status")
	}

	l, err := s.load(ctx, id)
	if err != nil {
		return transport.ListingResponse{}, err
	}
	l.ApprovalStatus = approval
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, l)
	if err != nil {
		return transport.ListingResponse{}, apperr.Opaque(err, "listings.Review", msgSaveFailed)
	}

	s.log.Info("listing reviewed", "id", id, "approval", approval, "active", updated.IsActive)
	return transport.ToListingResponse(updated), nil
}

func (s *Service) loadManaged(ctx context.Context, id uuid.UUID, caller domain.Caller) (domain.Listing, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	if !caller.CanManage(l) {
		return domain.Listing{}, apperr.Forbidden(msgNotPermitted)
	}
	return l, nil
}

func listingFromRequest(req transport.CreateListingRequest) domain.Listing {
	status := domain.ParseStatus(req.Status)
	if status == "" {
		status = domain.StatusAvailable
	}
	return domain.Listing{
		Title:        sanitize.Line(req.Title),
		Description:  sanitize.Text(req.Description),
		Price:        req.Price,
		PropertyType: domain.ParsePropertyType(req.PropertyType),
		Category:     domain.ParseCategory(req.Category),
		Intent:       domain.ParseIntent(req.Intent),
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqft:     req.AreaSqft,
		YearBuilt:    req.YearBuilt,
		Location:     locationFromRequest(req.Location),
		Images:       mediaFromRequest(req.Images),
		Documents:    mediaFromRequest(req.Documents),
		Status:       status,
		IsActive:     true,
		Featured:     req.Featured,
	}
}

func locationFromRequest(req transport.LocationRequest) domain.Location {
	return domain.Location{
		Address:    sanitize.Line(req.Address),
		City:       sanitize.Line(req.City),
		State:      sanitize.Line(req.State),
		PostalCode: req.PostalCode,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}
}

func mediaFromRequest(items []transport.MediaRequest) []domain.Media {
	out := make([]domain.Media, 0, len(items))
	for _, item := range items {
		out = append(out, domain.Media{URL: item.URL, Caption: sanitize.Line(item.Caption)})
	}
	return out
}

func applyUpdate(l *domain.Listing, req transport.UpdateListingRequest) {
	if req.Title != nil {
		l.Title = sanitize.Line(*req.Title)
	}
	if req.Description != nil {
		l.Description = sanitize.Text(*req.Description)
	}
	if req.Price != nil {
		l.Price = *req.Price
	}
	if req.PropertyType != nil {
		if t := domain.ParsePropertyType(*req.PropertyType); t != "" {
			l.PropertyType = t
		}
	}
	if req.Category != nil {
		if c := domain.ParseCategory(*req.Category); c != "" {
			l.Category = c
		}
	}
	if req.Intent != nil {
		if i := domain.ParseIntent(*req.Intent); i != "" {
			l.Intent = i
		}
	}
	if req.Bedrooms != nil {
		l.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		l.Bathrooms = *req.Bathrooms
	}
	if req.AreaSqft != nil {
		l.AreaSqft = *req.AreaSqft
	}
	if req.YearBuilt != nil {
		l.YearBuilt = req.YearBuilt
	}
	if req.Location != nil {
		l.Location = locationFromRequest(*req.Location)
	}
	if req.Status != nil {
		if st := domain.ParseStatus(*req.Status); st != "" {
			l.Status = st
		}
	}
	if req.Featured != nil {
		l.Featured = *req.Featured
	}
}
