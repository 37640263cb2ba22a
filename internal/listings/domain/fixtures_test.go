package domain

import (
	"time"

	"github.com/google/uuid"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func publicListing(price float64) Listing {
	return Listing{
		ID:             uuid.New(),
		Title:          "Bright family home",
		Description:    "Close to schools",
		Price:          price,
		PropertyType:   PropertyHouse,
		Category:       CategoryResidential,
		Intent:         IntentBuy,
		Bedrooms:       3,
		Bathrooms:      2,
		AreaSqft:       1500,
		Location:       Location{Address: "12 Elm Street", City: "Austin", State: "TX", PostalCode: "73301"},
		Status:         StatusAvailable,
		ApprovalStatus: ApprovalApproved,
		IsActive:       true,
		Source:         SourceManual,
		CreatedAt:      baseTime,
		UpdatedAt:      baseTime,
	}
}

func filter(listings []Listing, p Predicate) []Listing {
	var out []Listing
	for _, l := range listings {
		if p.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

func agentCaller() Caller { return Caller{UserID: uuid.New(), Role: RoleAgent} }
func adminCaller() Caller { return Caller{UserID: uuid.New(), Role: RoleAdmin} }
