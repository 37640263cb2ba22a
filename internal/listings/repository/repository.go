package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/platform/apperr"
)

const listingNotFoundMessage = "listing not found"

const listingColumns = `
	id, agent_id, title, description, price, property_type, category, intent,
	bedrooms, bathrooms, area_sqft, year_built,
	address, city, state, postal_code, latitude, longitude,
	images, documents, status, approval_status, is_active, featured, source,
	view_count, favorite_count, created_at, updated_at`

// Repo is the PostgreSQL listings repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new listings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a listing. The database assigns id and timestamps.
func (r *Repo) Create(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	imagesJSON, documentsJSON, err := marshalMedia(l)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("create listing: %w", err)
	}

	query := `
		INSERT INTO listings (
			agent_id, title, description, price, property_type, category, intent,
			bedrooms, bathrooms, area_sqft, year_built,
			address, city, state, postal_code, latitude, longitude,
			images, documents, status, approval_status, is_active, featured, source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING` + listingColumns

	created, err := scanListing(r.pool.QueryRow(ctx, query,
		l.AgentID, l.Title, l.Description, l.Price, string(l.PropertyType), string(l.Category), string(l.Intent),
		l.Bedrooms, l.Bathrooms, l.AreaSqft, l.YearBuilt,
		l.Location.Address, l.Location.City, l.Location.State, l.Location.PostalCode, l.Location.Latitude, l.Location.Longitude,
		imagesJSON, documentsJSON, string(l.Status), string(l.ApprovalStatus), l.IsActive, l.Featured, string(l.Source),
	))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("create listing: %w", err)
	}
	return created, nil
}

// Update replaces the mutable fields of a listing.
func (r *Repo) Update(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	imagesJSON, documentsJSON, err := marshalMedia(l)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("update listing: %w", err)
	}

	query := `
		UPDATE listings
		SET title = $2, description = $3, price = $4, property_type = $5, category = $6, intent = $7,
			bedrooms = $8, bathrooms = $9, area_sqft = $10, year_built = $11,
			address = $12, city = $13, state = $14, postal_code = $15, latitude = $16, longitude = $17,
			images = $18, documents = $19, status = $20, approval_status = $21, is_active = $22, featured = $23,
			updated_at = now()
		WHERE id = $1
		RETURNING` + listingColumns

	updated, err := scanListing(r.pool.QueryRow(ctx, query,
		l.ID, l.Title, l.Description, l.Price, string(l.PropertyType), string(l.Category), string(l.Intent),
		l.Bedrooms, l.Bathrooms, l.AreaSqft, l.YearBuilt,
		l.Location.Address, l.Location.City, l.Location.State, l.Location.PostalCode, l.Location.Latitude, l.Location.Longitude,
		imagesJSON, documentsJSON, string(l.Status), string(l.ApprovalStatus), l.IsActive, l.Featured,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, apperr.NotFound(listingNotFoundMessage)
		}
		return domain.Listing{}, fmt.Errorf("update listing: %w", err)
	}
	return updated, nil
}

// Delete removes a listing. Wishlist entries pointing at it are left in place.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(listingNotFoundMessage)
	}
	return nil
}

// GetByID retrieves a listing by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	query := `SELECT` + listingColumns + ` FROM listings WHERE id = $1`
	l, err := scanListing(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, apperr.NotFound(listingNotFoundMessage)
		}
		return domain.Listing{}, fmt.Errorf("get listing by id: %w", err)
	}
	return l, nil
}

// GetByIDs retrieves every listing in ids that still exists.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Listing, error) {
	if len(ids) == 0 {
		return []domain.Listing{}, nil
	}
	query := `SELECT` + listingColumns + ` FROM listings WHERE id = ANY($1::uuid[])`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get listings by ids: %w", err)
	}
	defer rows.Close()
	return collectListings(rows)
}

// Count returns the number of listings matching p.
func (r *Repo) Count(ctx context.Context, p domain.Predicate) (int, error) {
	where, args, err := compileWhere(p)
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM listings WHERE "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return total, nil
}

// Find returns one sorted page of listings matching p.
func (r *Repo) Find(ctx context.Context, p domain.Predicate, page domain.Page) ([]domain.Listing, error) {
	w := newWhereBuilder(1)
	where, err := w.compile(p)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}

	limitArg := w.bind(page.Limit)
	offsetArg := w.bind(page.Skip)
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings
		WHERE %s
		ORDER BY %s
		LIMIT %s OFFSET %s
	`, listingColumns, where, orderBy(page), limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer rows.Close()
	return collectListings(rows)
}

// IncrementViews bumps the view counter by one.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `UPDATE listings SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment listing views: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(listingNotFoundMessage)
	}
	return nil
}

// AdjustFavorites shifts the favorite counter, never below zero.
func (r *Repo) AdjustFavorites(ctx context.Context, id uuid.UUID, delta int) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE listings SET favorite_count = GREATEST(favorite_count + $2, 0) WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust listing favorites: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(listingNotFoundMessage)
	}
	return nil
}

func marshalMedia(l domain.Listing) ([]byte, []byte, error) {
	imagesJSON, err := json.Marshal(nonNilMedia(l.Images))
	if err != nil {
		return nil, nil, err
	}
	documentsJSON, err := json.Marshal(nonNilMedia(l.Documents))
	if err != nil {
		return nil, nil, err
	}
	return imagesJSON, documentsJSON, nil
}

func nonNilMedia(media []domain.Media) []domain.Media {
	if media == nil {
		return []domain.Media{}
	}
	return media
}

func collectListings(rows pgx.Rows) ([]domain.Listing, error) {
	items := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		items = append(items, l)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate listings: %w", rows.Err())
	}
	return items, nil
}

func scanListing(row pgx.Row) (domain.Listing, error) {
	var l domain.Listing
	var propertyType, category, intent, status, approval, source string
	var imagesJSON, documentsJSON []byte
	var createdAt, updatedAt time.Time

	if err := row.Scan(
		&l.ID, &l.AgentID, &l.Title, &l.Description, &l.Price, &propertyType, &category, &intent,
		&l.Bedrooms, &l.Bathrooms, &l.AreaSqft, &l.YearBuilt,
		&l.Location.Address, &l.Location.City, &l.Location.State, &l.Location.PostalCode, &l.Location.Latitude, &l.Location.Longitude,
		&imagesJSON, &documentsJSON, &status, &approval, &l.IsActive, &l.Featured, &source,
		&l.ViewCount, &l.FavoriteCount, &createdAt, &updatedAt,
	); err != nil {
		return domain.Listing{}, err
	}

	l.PropertyType = domain.PropertyType(propertyType)
	l.Category = domain.Category(category)
	l.Intent = domain.Intent(intent)
	l.Status = domain.Status(status)
	l.ApprovalStatus = domain.ApprovalStatus(approval)
	l.Source = domain.Source(source)
	l.CreatedAt = createdAt
	l.UpdatedAt = updatedAt

	_ = json.Unmarshal(imagesJSON, &l.Images)
	_ = json.Unmarshal(documentsJSON, &l.Documents)
	l.Images = nonNilMedia(l.Images)
	l.Documents = nonNilMedia(l.Documents)

	return l, nil
}
