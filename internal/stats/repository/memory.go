package repository

import (
	"context"
	"sync"
	"time"

	"property_catalog_backend/internal/stats/domain"
)

// Memory computes statistics over facts held in process.
type Memory struct {
	mu       sync.RWMutex
	listings []domain.ListingFacts
	users    []time.Time
	contacts []time.Time
}

// NewMemory creates a memory source over the given facts.
func NewMemory(listings []domain.ListingFacts, users, contacts []time.Time) *Memory {
	return &Memory{listings: listings, users: users, contacts: contacts}
}

var _ Source = (*Memory)(nil)

// SetListings replaces the listing facts.
func (m *Memory) SetListings(listings []domain.ListingFacts) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = listings
}

func (m *Memory) Overview(_ context.Context, since time.Time) (domain.Overview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Overview{
		Listings: domain.CountListings(m.listings, since),
		Users:    domain.CountSince(m.users, since),
		Contacts: domain.CountSince(m.contacts, since),
	}, nil
}

func (m *Memory) PriceRollup(_ context.Context, scope domain.Scope) (domain.PriceRollup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.SummarizePrices(domain.FilterScope(m.listings, scope)), nil
}

func (m *Memory) GroupByType(_ context.Context, scope domain.Scope) ([]domain.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.GroupBy(domain.FilterScope(m.listings, scope), domain.ByPropertyType, 0), nil
}

func (m *Memory) TopCities(_ context.Context, scope domain.Scope, limit int) ([]domain.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.GroupBy(domain.FilterScope(m.listings, scope), domain.ByCity, limit), nil
}

func (m *Memory) MonthlySeries(_ context.Context, since time.Time, scope domain.Scope) (domain.TimeSeries, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inScope := domain.FilterScope(m.listings, scope)
	created := make([]time.Time, 0, len(inScope))
	for _, l := range inScope {
		created = append(created, l.CreatedAt)
	}
	return domain.TimeSeries{
		Users:    domain.MonthlySeries(m.users, since),
		Listings: domain.MonthlySeries(created, since),
		Contacts: domain.MonthlySeries(m.contacts, since),
	}, nil
}
