// Package transport holds the wishlist request and response payloads.
package transport

// Status messages carried on wishlist responses.
const (
	MessageAdded          = "added to wishlist"
	MessageAlreadySaved   = "already in wishlist"
	MessageRemoved        = "removed from wishlist"
	MessageCleared        = "wishlist cleared"
	MessageSignInRequired = "sign in to see your wishlist"
)

// SavedListingResponse is one materialised wishlist entry.
type SavedListingResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	PropertyType string  `json:"propertyType"`
	Intent       string  `json:"intent"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	Sqft         int     `json:"sqft"`
	Status       string  `json:"status"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

// ListResponse is the materialised wishlist.
type ListResponse struct {
	Items   []SavedListingResponse `json:"items"`
	Count   int                    `json:"count"`
	Message string                 `json:"message,omitempty"`
}

// MembershipResponse reports the state of one listing after a mutation.
type MembershipResponse struct {
	ListingID string `json:"listingId"`
	Added     bool   `json:"added"`
	IsMember  bool   `json:"isMember"`
	Message   string `json:"message"`
}

// ClearResponse reports how many ids were removed.
type ClearResponse struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}
