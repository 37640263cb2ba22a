// Package repository persists listings and evaluates catalog predicates
// against storage.
package repository

import (
	"context"

	"github.com/google/uuid"

	"property_catalog_backend/internal/listings/domain"
)

// Reader is the read side used by the query service and other contexts.
type Reader interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	// GetByIDs returns the listings that still exist, in no particular order.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Listing, error)
	Count(ctx context.Context, p domain.Predicate) (int, error)
	Find(ctx context.Context, p domain.Predicate, page domain.Page) ([]domain.Listing, error)
}

// Writer is the write side of the catalog.
type Writer interface {
	Create(ctx context.Context, l domain.Listing) (domain.Listing, error)
	Update(ctx context.Context, l domain.Listing) (domain.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Counters holds the atomic counter updates.
type Counters interface {
	IncrementViews(ctx context.Context, id uuid.UUID) error
	AdjustFavorites(ctx context.Context, id uuid.UUID, delta int) error
}

// Repository is the full listings storage contract.
type Repository interface {
	Reader
	Writer
	Counters
}
