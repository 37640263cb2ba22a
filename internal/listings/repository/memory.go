package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/platform/apperr"
)

// Memory is an in-process Repository that evaluates predicates with the
// domain matcher. It backs tests and the seed dry run.
type Memory struct {
	mu       sync.RWMutex
	listings map[uuid.UUID]domain.Listing
	now      func() time.Time
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{listings: make(map[uuid.UUID]domain.Listing), now: time.Now}
}

var _ Repository = (*Memory)(nil)

// Put stores a listing as-is, keeping its id and timestamps.
func (m *Memory) Put(l domain.Listing) domain.Listing {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = m.now()
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = l.CreatedAt
	}
	m.listings[l.ID] = l
	return l
}

// All returns every stored listing, unsorted.
func (m *Memory) All() []domain.Listing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		out = append(out, l)
	}
	return out
}

func (m *Memory) Create(_ context.Context, l domain.Listing) (domain.Listing, error) {
	l.ID = uuid.Nil
	l.CreatedAt = time.Time{}
	l.UpdatedAt = time.Time{}
	return m.Put(l), nil
}

func (m *Memory) Update(_ context.Context, l domain.Listing) (domain.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.listings[l.ID]
	if !ok {
		return domain.Listing{}, apperr.NotFound(listingNotFoundMessage)
	}
	l.AgentID = existing.AgentID
	l.Source = existing.Source
	l.ViewCount = existing.ViewCount
	l.FavoriteCount = existing.FavoriteCount
	l.CreatedAt = existing.CreatedAt
	l.UpdatedAt = m.now()
	m.listings[l.ID] = l
	return l, nil
}

func (m *Memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listings[id]; !ok {
		return apperr.NotFound(listingNotFoundMessage)
	}
	delete(m.listings, id)
	return nil
}

func (m *Memory) GetByID(_ context.Context, id uuid.UUID) (domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.listings[id]
	if !ok {
		return domain.Listing{}, apperr.NotFound(listingNotFoundMessage)
	}
	return l, nil
}

func (m *Memory) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := m.listings[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *Memory) Count(_ context.Context, p domain.Predicate) (int, error) {
	return len(m.match(p)), nil
}

func (m *Memory) Find(_ context.Context, p domain.Predicate, page domain.Page) ([]domain.Listing, error) {
	matched := m.match(p)
	slices.SortFunc(matched, func(a, b domain.Listing) int {
		return domain.Compare(a, b, page.SortBy, page.Descending)
	})
	skip := max(page.Skip, 0)
	if skip >= len(matched) {
		return []domain.Listing{}, nil
	}
	end := skip + page.Limit
	if page.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (m *Memory) IncrementViews(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[id]
	if !ok {
		return apperr.NotFound(listingNotFoundMessage)
	}
	l.ViewCount++
	m.listings[id] = l
	return nil
}

func (m *Memory) AdjustFavorites(_ context.Context, id uuid.UUID, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[id]
	if !ok {
		return apperr.NotFound(listingNotFoundMessage)
	}
	l.FavoriteCount = max(l.FavoriteCount+int64(delta), 0)
	m.listings[id] = l
	return nil
}

func (m *Memory) match(p domain.Predicate) []domain.Listing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Listing, 0)
	for _, l := range m.listings {
		if p.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}
