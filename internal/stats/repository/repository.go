// Package repository computes catalog statistics from storage.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"property_catalog_backend/internal/stats/domain"
)

// Source provides the independent reports the statistics service combines.
type Source interface {
	Overview(ctx context.Context, since time.Time) (domain.Overview, error)
	PriceRollup(ctx context.Context, scope domain.Scope) (domain.PriceRollup, error)
	GroupByType(ctx context.Context, scope domain.Scope) ([]domain.Group, error)
	TopCities(ctx context.Context, scope domain.Scope, limit int) ([]domain.Group, error)
	MonthlySeries(ctx context.Context, since time.Time, scope domain.Scope) (domain.TimeSeries, error)
}

const activeClause = "approval_status = 'approved' AND is_active"

// Repo is the PostgreSQL statistics source.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new statistics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Source = (*Repo)(nil)

func scopeClause(scope domain.Scope) string {
	if scope == domain.ScopeAll {
		return "TRUE"
	}
	return activeClause
}

func (r *Repo) Overview(ctx context.Context, since time.Time) (domain.Overview, error) {
	var o domain.Overview

	listingsQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE ` + activeClause + `),
			COUNT(*) FILTER (WHERE featured),
			COUNT(*) FILTER (WHERE created_at >= $1)
		FROM listings`
	if err := r.pool.QueryRow(ctx, listingsQuery, since).Scan(
		&o.Listings.Total, &o.Listings.Active, &o.Listings.Featured, &o.Listings.NewInWindow,
	); err != nil {
		return domain.Overview{}, fmt.Errorf("count listings: %w", err)
	}

	var err error
	if o.Users, err = r.counts(ctx, "users", since); err != nil {
		return domain.Overview{}, err
	}
	if o.Contacts, err = r.counts(ctx, "contacts", since); err != nil {
		return domain.Overview{}, err
	}
	return o, nil
}

// counts is only called with fixed table names.
func (r *Repo) counts(ctx context.Context, table string, since time.Time) (domain.Counts, error) {
	var c domain.Counts
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at >= $1) FROM ` + table
	if err := r.pool.QueryRow(ctx, query, since).Scan(&c.Total, &c.NewInWindow); err != nil {
		return domain.Counts{}, fmt.Errorf("count %s: %w", table, err)
	}
	return c, nil
}

func (r *Repo) PriceRollup(ctx context.Context, scope domain.Scope) (domain.PriceRollup, error) {
	var p domain.PriceRollup
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(price), 0)::float8,
			COALESCE(AVG(price), 0)::float8,
			COALESCE(MIN(price), 0)::float8,
			COALESCE(MAX(price), 0)::float8,
			COALESCE(SUM(view_count), 0)::bigint
		FROM listings
		WHERE ` + scopeClause(scope)

	if err := r.pool.QueryRow(ctx, query).Scan(&p.Count, &p.Sum, &p.Average, &p.Min, &p.Max, &p.TotalViews); err != nil {
		return domain.PriceRollup{}, fmt.Errorf("price rollup: %w", err)
	}
	p.Average = domain.Round2(p.Average)
	return p, nil
}

func (r *Repo) GroupByType(ctx context.Context, scope domain.Scope) ([]domain.Group, error) {
	query := `
		SELECT property_type, COUNT(*), COALESCE(AVG(price), 0)::float8
		FROM listings
		WHERE ` + scopeClause(scope) + `
		GROUP BY property_type
		ORDER BY COUNT(*) DESC, property_type ASC`
	return r.groups(ctx, "group by type", query)
}

func (r *Repo) TopCities(ctx context.Context, scope domain.Scope, limit int) ([]domain.Group, error) {
	query := `
		SELECT city, COUNT(*), COALESCE(AVG(price), 0)::float8
		FROM listings
		WHERE ` + scopeClause(scope) + `
		GROUP BY city
		ORDER BY COUNT(*) DESC, city ASC
		LIMIT $1`
	return r.groups(ctx, "top cities", query, limit)
}

func (r *Repo) groups(ctx context.Context, op, query string, args ...any) ([]domain.Group, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	groups := make([]domain.Group, 0)
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.Key, &g.Count, &g.AveragePrice); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		g.AveragePrice = domain.Round2(g.AveragePrice)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return groups, nil
}

func (r *Repo) MonthlySeries(ctx context.Context, since time.Time, scope domain.Scope) (domain.TimeSeries, error) {
	var ts domain.TimeSeries
	var err error
	if ts.Users, err = r.monthly(ctx, "users", "TRUE", since); err != nil {
		return domain.TimeSeries{}, err
	}
	if ts.Listings, err = r.monthly(ctx, "listings", scopeClause(scope), since); err != nil {
		return domain.TimeSeries{}, err
	}
	if ts.Contacts, err = r.monthly(ctx, "contacts", "TRUE", since); err != nil {
		return domain.TimeSeries{}, err
	}
	return ts, nil
}

// monthly is only called with fixed table names and clauses.
func (r *Repo) monthly(ctx context.Context, table, clause string, since time.Time) ([]domain.MonthBucket, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int AS year,
			EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month,
			COUNT(*)
		FROM ` + table + `
		WHERE created_at >= $1 AND ` + clause + `
		GROUP BY year, month
		ORDER BY year ASC, month ASC`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("monthly %s: %w", table, err)
	}
	defer rows.Close()

	series := make([]domain.MonthBucket, 0)
	for rows.Next() {
		var b domain.MonthBucket
		if err := rows.Scan(&b.Year, &b.Month, &b.Count); err != nil {
			return nil, fmt.Errorf("monthly %s: scan: %w", table, err)
		}
		series = append(series, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("monthly %s: %w", table, err)
	}
	return series, nil
}
