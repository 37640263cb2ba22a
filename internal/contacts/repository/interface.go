package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Contact is a stored contact inquiry.
type Contact struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Phone     *string    `db:"phone"`
	Message   string     `db:"message"`
	ListingID *uuid.UUID `db:"listing_id"`
	CreatedAt time.Time  `db:"created_at"`
}

// CreateContactParams contains data for storing an inquiry.
type CreateContactParams struct {
	Name      string
	Email     string
	Phone     *string
	Message   string
	ListingID *uuid.UUID
}

// ListContactsParams defines the page window for listing inquiries.
type ListContactsParams struct {
	Offset int
	Limit  int
}

// Repository defines the contact inquiry storage contract.
type Repository interface {
	Create(ctx context.Context, params CreateContactParams) (Contact, error)
	// List returns the newest inquiries first together with the total count.
	List(ctx context.Context, params ListContactsParams) ([]Contact, int, error)
}
