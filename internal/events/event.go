// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"github.com/google/uuid"

	"property_catalog_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Wishlist Domain Events
// =============================================================================

// WishlistItemAdded is published when a listing enters a user's wishlist.
// It is not published for duplicate adds.
type WishlistItemAdded struct {
	BaseEvent
	UserID    uuid.UUID `json:"userId"`
	ListingID uuid.UUID `json:"listingId"`
}

func (e WishlistItemAdded) EventName() string { return "wishlist.item.added" }

// WishlistItemRemoved is published when a listing leaves a user's wishlist.
type WishlistItemRemoved struct {
	BaseEvent
	UserID    uuid.UUID `json:"userId"`
	ListingID uuid.UUID `json:"listingId"`
}

func (e WishlistItemRemoved) EventName() string { return "wishlist.item.removed" }

// WishlistCleared is published when a user empties their wishlist.
type WishlistCleared struct {
	BaseEvent
	UserID     uuid.UUID   `json:"userId"`
	ListingIDs []uuid.UUID `json:"listingIds"`
}

func (e WishlistCleared) EventName() string { return "wishlist.cleared" }

// =============================================================================
// Contact Domain Events
// =============================================================================

// ContactSubmitted is published after a contact inquiry has been stored.
type ContactSubmitted struct {
	BaseEvent
	ContactID uuid.UUID  `json:"contactId"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Message   string     `json:"message"`
	ListingID *uuid.UUID `json:"listingId,omitempty"`
}

func (e ContactSubmitted) EventName() string { return "contacts.contact.submitted" }
