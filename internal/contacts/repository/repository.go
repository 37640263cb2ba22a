// Package repository stores contact inquiries.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the PostgreSQL contacts repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contacts repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

func (r *Repo) Create(ctx context.Context, params CreateContactParams) (Contact, error) {
	query := `
		INSERT INTO contacts (name, email, phone, message, listing_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, phone, message, listing_id, created_at`

	var c Contact
	err := r.pool.QueryRow(ctx, query, params.Name, params.Email, params.Phone, params.Message, params.ListingID).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.ListingID, &c.CreatedAt,
	)
	if err != nil {
		return Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (r *Repo) List(ctx context.Context, params ListContactsParams) ([]Contact, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	query := `
		SELECT id, name, email, phone, message, listing_id, created_at
		FROM contacts
		ORDER BY created_at DESC, id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}

	contacts, err := pgx.CollectRows(rows, pgx.RowToStructByName[Contact])
	if err != nil {
		return nil, 0, fmt.Errorf("scan contacts: %w", err)
	}
	return contacts, total, nil
}
