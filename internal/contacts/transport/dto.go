// Package transport holds the contact inquiry payloads.
package transport

// SubmitContactRequest is the public inquiry form.
type SubmitContactRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	Email     string  `json:"email" validate:"required,email,max=254"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Message   string  `json:"message" validate:"required,min=10,max=5000"`
	ListingID *string `json:"listingId,omitempty" validate:"omitempty,uuid"`
}

// ListContactsQuery is the admin paging query.
type ListContactsQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type ContactResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Message   string  `json:"message"`
	ListingID *string `json:"listingId,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type ContactListResponse struct {
	Items      []ContactResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	HasNext    bool              `json:"hasNext"`
	HasPrev    bool              `json:"hasPrev"`
}
