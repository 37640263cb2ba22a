// Package transport holds the request and response shapes of the listings API.
package transport

import (
	"strings"

	"property_catalog_backend/internal/listings/domain"
)

// ListingQuery is the raw catalog query string. Every field is a string so
// binding never fails; Criteria and PageRequest coerce leniently.
type ListingQuery struct {
	Search         string `form:"search"`
	PropertyType   string `form:"propertyType"`
	Category       string `form:"category"`
	Intent         string `form:"intent"`
	City           string `form:"city"`
	State          string `form:"state"`
	MinPrice       string `form:"minPrice"`
	MaxPrice       string `form:"maxPrice"`
	Bedrooms       string `form:"bedrooms"`
	Bathrooms      string `form:"bathrooms"`
	MinArea        string `form:"minArea"`
	MaxArea        string `form:"maxArea"`
	Featured       string `form:"featured"`
	Status         string `form:"status"`
	ApprovalStatus string `form:"approvalStatus"`
	SortBy         string `form:"sortBy"`
	SortOrder      string `form:"sortOrder"`
	Page           string `form:"page"`
	Limit          string `form:"limit"`
}

// Criteria converts the query into typed filter criteria. Malformed values
// are dropped.
func (q ListingQuery) Criteria() domain.Criteria {
	return domain.Criteria{
		Search:         strings.TrimSpace(q.Search),
		PropertyType:   domain.ParsePropertyType(q.PropertyType),
		Category:       domain.ParseCategory(q.Category),
		Intent:         domain.ParseIntent(q.Intent),
		City:           strings.TrimSpace(q.City),
		State:          strings.TrimSpace(q.State),
		MinPrice:       domain.ParseOptionalFloat(q.MinPrice),
		MaxPrice:       domain.ParseOptionalFloat(q.MaxPrice),
		Bedrooms:       domain.ParseBedrooms(q.Bedrooms),
		Bathrooms:      domain.ParseOptionalInt(q.Bathrooms),
		MinArea:        domain.ParseOptionalFloat(q.MinArea),
		MaxArea:        domain.ParseOptionalFloat(q.MaxArea),
		Featured:       domain.ParseOptionalBool(q.Featured),
		Status:         domain.ParseStatus(q.Status),
		ApprovalStatus: domain.ParseApprovalStatus(q.ApprovalStatus),
	}
}

// PageRequest converts the paging parameters. Malformed numbers become zero,
// which the normalizer treats as absent.
func (q ListingQuery) PageRequest() domain.PageRequest {
	return domain.PageRequest{
		Page:      intOrZero(q.Page),
		Limit:     intOrZero(q.Limit),
		SortBy:    strings.TrimSpace(q.SortBy),
		SortOrder: strings.TrimSpace(q.SortOrder),
	}
}

// LimitQuery is the optional limit used by the similar and featured endpoints.
type LimitQuery struct {
	Limit string `form:"limit"`
}

// Value returns the parsed limit or zero.
func (q LimitQuery) Value() int {
	return intOrZero(q.Limit)
}

func intOrZero(raw string) int {
	if n := domain.ParseOptionalInt(raw); n != nil {
		return *n
	}
	return 0
}

// LocationRequest is the address block of a write request.
type LocationRequest struct {
	Address    string   `json:"address" validate:"required,min=3,max=200"`
	City       string   `json:"city" validate:"required,max=100"`
	State      string   `json:"state" validate:"required,max=100"`
	PostalCode string   `json:"postalCode" validate:"required,postalcode"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// MediaRequest references an already uploaded file.
type MediaRequest struct {
	URL     string `json:"url" validate:"required,url,max=2048"`
	Caption string `json:"caption" validate:"max=200"`
}

// CreateListingRequest is the body of POST /listings and the ingest endpoint.
type CreateListingRequest struct {
	Title          string          `json:"title" validate:"required,min=3,max=200"`
	Description    string          `json:"description" validate:"required,max=5000"`
	Price          float64         `json:"price" validate:"gte=0"`
	PropertyType   string          `json:"propertyType" validate:"required,oneof=House Apartment Condo Townhouse Villa Land Office Retail Industrial"`
	Category       string          `json:"category" validate:"required,oneof=Residential Commercial"`
	Intent         string          `json:"intent" validate:"required,oneof=Buy Rent"`
	Bedrooms       int             `json:"bedrooms" validate:"gte=0,lte=100"`
	Bathrooms      int             `json:"bathrooms" validate:"gte=0,lte=100"`
	AreaSqft       int             `json:"sqft" validate:"required,gte=1"`
	YearBuilt      *int            `json:"yearBuilt,omitempty" validate:"omitempty,yearbuilt"`
	Location       LocationRequest `json:"location" validate:"required"`
	Images         []MediaRequest  `json:"images,omitempty" validate:"omitempty,max=50,dive"`
	Documents      []MediaRequest  `json:"documents,omitempty" validate:"omitempty,max=20,dive"`
	Status         string          `json:"status,omitempty" validate:"omitempty,oneof=Available Sold UnderContract OffMarket"`
	Featured       bool            `json:"featured"`
	ApprovalStatus string          `json:"approvalStatus,omitempty" validate:"omitempty,oneof=approved pending rejected"`
	IsActive       *bool           `json:"isActive,omitempty"`
}

// UpdateListingRequest is the body of PUT /listings/:id. Nil fields are kept.
type UpdateListingRequest struct {
	Title        *string          `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description  *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price        *float64         `json:"price,omitempty" validate:"omitempty,gte=0"`
	PropertyType *string          `json:"propertyType,omitempty" validate:"omitempty,oneof=House Apartment Condo Townhouse Villa Land Office Retail Industrial"`
	Category     *string          `json:"category,omitempty" validate:"omitempty,oneof=Residential Commercial"`
	Intent       *string          `json:"intent,omitempty" validate:"omitempty,oneof=Buy Rent"`
	Bedrooms     *int             `json:"bedrooms,omitempty" validate:"omitempty,gte=0,lte=100"`
	Bathrooms    *int             `json:"bathrooms,omitempty" validate:"omitempty,gte=0,lte=100"`
	AreaSqft     *int             `json:"sqft,omitempty" validate:"omitempty,gte=1"`
	YearBuilt    *int             `json:"yearBuilt,omitempty" validate:"omitempty,yearbuilt"`
	Location     *LocationRequest `json:"location,omitempty" validate:"omitempty"`
	Status       *string          `json:"status,omitempty" validate:"omitempty,oneof=Available Sold UnderContract OffMarket"`
	Featured     *bool            `json:"featured,omitempty"`
}

// ReviewListingRequest is the body of PATCH /admin/listings/:id/approval.
type ReviewListingRequest struct {
	ApprovalStatus string `json:"approvalStatus" validate:"required,oneof=approved pending rejected"`
	IsActive       *bool  `json:"isActive,omitempty"`
}

// Media kinds accepted by the media endpoints.
const (
	MediaKindImages    = "images"
	MediaKindDocuments = "documents"
)

// PresignMediaRequest asks for an upload URL for a listing file.
type PresignMediaRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=images documents"`
	FileName    string `json:"fileName" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required,max=100"`
	SizeBytes   int64  `json:"sizeBytes" validate:"required,gt=0"`
}

// PresignMediaResponse carries the upload URL and the key to attach later.
type PresignMediaResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileKey   string `json:"fileKey"`
	ExpiresAt string `json:"expiresAt"`
}

// AttachMediaRequest records an uploaded file on the listing.
type AttachMediaRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=images documents"`
	FileKey string `json:"fileKey" validate:"required,max=500"`
	Caption string `json:"caption" validate:"max=200"`
}

// LocationResponse is the address block of a listing.
type LocationResponse struct {
	Address    string   `json:"address"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	PostalCode string   `json:"postalCode"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// ListingResponse is the public representation of a listing.
type ListingResponse struct {
	ID             string           `json:"id"`
	AgentID        *string          `json:"agentId,omitempty"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Price          float64          `json:"price"`
	PropertyType   string           `json:"propertyType"`
	Category       string           `json:"category"`
	Intent         string           `json:"intent"`
	Bedrooms       int              `json:"bedrooms"`
	Bathrooms      int              `json:"bathrooms"`
	AreaSqft       int              `json:"sqft"`
	YearBuilt      *int             `json:"yearBuilt,omitempty"`
	Location       LocationResponse `json:"location"`
	Images         []domain.Media   `json:"images"`
	Documents      []domain.Media   `json:"documents"`
	Status         string           `json:"status"`
	ApprovalStatus string           `json:"approvalStatus"`
	IsActive       bool             `json:"isActive"`
	Featured       bool             `json:"featured"`
	Source         string           `json:"source"`
	ViewCount      int64            `json:"viewCount"`
	FavoriteCount  int64            `json:"favoriteCount"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

// ListingListResponse is a page of listings with pagination metadata.
type ListingListResponse struct {
	Items      []ListingResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	HasNext    bool              `json:"hasNext"`
	HasPrev    bool              `json:"hasPrev"`
}
