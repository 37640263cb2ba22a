// Package repository stores saved-listing sets per user.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the wishlist storage contract. Listing ids are not checked
// against the catalog here and may dangle after a listing is deleted.
type Repository interface {
	// Add inserts the id and reports whether it was newly added.
	Add(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	// Remove deletes the id and reports whether it was present.
	Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	Contains(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	// List returns the saved ids in insertion order.
	List(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// Clear removes every id and returns the removed ids.
	Clear(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Repo is the PostgreSQL wishlist repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wishlist repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

func (r *Repo) Add(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO wishlist_items (user_id, listing_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, listing_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("add wishlist item: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repo) Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE user_id = $1 AND listing_id = $2`, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("remove wishlist item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) Contains(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE user_id = $1 AND listing_id = $2)`
	if err := r.pool.QueryRow(ctx, query, userID, listingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check wishlist item: %w", err)
	}
	return exists, nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT listing_id FROM wishlist_items
		WHERE user_id = $1
		ORDER BY created_at ASC, listing_id ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wishlist: %w", err)
	}
	return ids, nil
}

func (r *Repo) Clear(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `DELETE FROM wishlist_items WHERE user_id = $1 RETURNING listing_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("clear wishlist: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan cleared item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("clear wishlist: %w", err)
	}
	return ids, nil
}
