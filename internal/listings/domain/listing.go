// Package domain holds the listing model and the pure query rules of the
// catalog: filter building, visibility, pagination and similarity.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PropertyType classifies the building on a listing.
type PropertyType string

const (
	PropertyHouse      PropertyType = "House"
	PropertyApartment  PropertyType = "Apartment"
	PropertyCondo      PropertyType = "Condo"
	PropertyTownhouse  PropertyType = "Townhouse"
	PropertyVilla      PropertyType = "Villa"
	PropertyLand       PropertyType = "Land"
	PropertyOffice     PropertyType = "Office"
	PropertyRetail     PropertyType = "Retail"
	PropertyIndustrial PropertyType = "Industrial"
)

// PropertyTypes lists every known property type.
var PropertyTypes = []PropertyType{
	PropertyHouse, PropertyApartment, PropertyCondo, PropertyTownhouse, PropertyVilla,
	PropertyLand, PropertyOffice, PropertyRetail, PropertyIndustrial,
}

// Category separates residential from commercial stock.
type Category string

const (
	CategoryResidential Category = "Residential"
	CategoryCommercial  Category = "Commercial"
)

// Intent tells whether a listing is offered for sale or for rent.
type Intent string

const (
	IntentBuy  Intent = "Buy"
	IntentRent Intent = "Rent"
)

// Status is the market status of a listing.
type Status string

const (
	StatusAvailable     Status = "Available"
	StatusSold          Status = "Sold"
	StatusUnderContract Status = "UnderContract"
	StatusOffMarket     Status = "OffMarket"
)

// ApprovalStatus is the moderation state of a listing.
type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Source records how a listing entered the catalog.
type Source string

const (
	SourceManual Source = "manual"
	SourceAPI    Source = "api"
	SourceImport Source = "import"
)

// Media is an image or document reference attached to a listing.
type Media struct {
	URL     string `json:"url" yaml:"url"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Location is the postal address of a listing.
type Location struct {
	Address    string   `yaml:"address"`
	City       string   `yaml:"city"`
	State      string   `yaml:"state"`
	PostalCode string   `yaml:"postalCode"`
	Latitude   *float64 `yaml:"latitude,omitempty"`
	Longitude  *float64 `yaml:"longitude,omitempty"`
}

// Listing is a property catalog entry.
type Listing struct {
	ID             uuid.UUID
	AgentID        *uuid.UUID
	Title          string
	Description    string
	Price          float64
	PropertyType   PropertyType
	Category       Category
	Intent         Intent
	Bedrooms       int
	Bathrooms      int
	AreaSqft       int
	YearBuilt      *int
	Location       Location
	Images         []Media
	Documents      []Media
	Status         Status
	ApprovalStatus ApprovalStatus
	IsActive       bool
	Featured       bool
	Source         Source
	ViewCount      int64
	FavoriteCount  int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPubliclyVisible reports whether anonymous callers may see the listing.
func (l Listing) IsPubliclyVisible() bool {
	return l.ApprovalStatus == ApprovalApproved && l.IsActive && l.Status == StatusAvailable
}

// ParsePropertyType resolves a property type case-insensitively.
// Unknown values yield "".
func ParsePropertyType(value string) PropertyType {
	value = strings.TrimSpace(value)
	for _, t := range PropertyTypes {
		if strings.EqualFold(string(t), value) {
			return t
		}
	}
	return ""
}

// ParseCategory resolves a category case-insensitively.
func ParseCategory(value string) Category {
	return matchFold(strings.TrimSpace(value), CategoryResidential, CategoryCommercial)
}

// ParseIntent resolves a listing intent case-insensitively.
func ParseIntent(value string) Intent {
	return matchFold(strings.TrimSpace(value), IntentBuy, IntentRent)
}

// ParseStatus resolves a market status case-insensitively.
func ParseStatus(value string) Status {
	return matchFold(strings.TrimSpace(value), StatusAvailable, StatusSold, StatusUnderContract, StatusOffMarket)
}

// ParseApprovalStatus resolves a moderation status case-insensitively.
func ParseApprovalStatus(value string) ApprovalStatus {
	return matchFold(strings.TrimSpace(value), ApprovalApproved, ApprovalPending, ApprovalRejected)
}

func matchFold[T ~string](value string, options ...T) T {
	for _, option := range options {
		if strings.EqualFold(string(option), value) {
			return option
		}
	}
	var zero T
	return zero
}
