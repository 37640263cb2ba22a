package transport

import (
	"time"

	"property_catalog_backend/internal/listings/domain"
)

// ToListingResponse maps a listing to its API shape.
func ToListingResponse(l domain.Listing) ListingResponse {
	var agentID *string
	if l.AgentID != nil {
		id := l.AgentID.String()
		agentID = &id
	}
	images := l.Images
	if images == nil {
		images = []domain.Media{}
	}
	documents := l.Documents
	if documents == nil {
		documents = []domain.Media{}
	}

	return ListingResponse{
		ID:           l.ID.String(),
		AgentID:      agentID,
		Title:        l.Title,
		Description:  l.Description,
		Price:        l.Price,
		PropertyType: string(l.PropertyType),
		Category:     string(l.Category),
		Intent:       string(l.Intent),
		Bedrooms:     l.Bedrooms,
		Bathrooms:    l.Bathrooms,
		AreaSqft:     l.AreaSqft,
		YearBuilt:    l.YearBuilt,
		Location: LocationResponse{
			Address:    l.Location.Address,
			City:       l.Location.City,
			State:      l.Location.State,
			PostalCode: l.Location.PostalCode,
			Latitude:   l.Location.Latitude,
			Longitude:  l.Location.Longitude,
		},
		Images:         images,
		Documents:      documents,
		Status:         string(l.Status),
		ApprovalStatus: string(l.ApprovalStatus),
		IsActive:       l.IsActive,
		Featured:       l.Featured,
		Source:         string(l.Source),
		ViewCount:      l.ViewCount,
		FavoriteCount:  l.FavoriteCount,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      l.UpdatedAt.Format(time.RFC3339),
	}
}

// ToListingResponses maps a slice of listings.
func ToListingResponses(listings []domain.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, ToListingResponse(l))
	}
	return out
}

// ToListingListResponse maps a paged result.
func ToListingListResponse(r domain.Result[domain.Listing]) ListingListResponse {
	return ListingListResponse{
		Items:      ToListingResponses(r.Items),
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
		HasNext:    r.HasNext,
		HasPrev:    r.HasPrev,
	}
}
