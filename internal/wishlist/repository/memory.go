package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Repository.
type Memory struct {
	mu    sync.Mutex
	items map[uuid.UUID][]uuid.UUID
}

// NewMemory creates an empty in-memory wishlist store.
func NewMemory() *Memory {
	return &Memory{items: make(map[uuid.UUID][]uuid.UUID)}
}

var _ Repository = (*Memory)(nil)

func (m *Memory) Add(_ context.Context, userID, listingID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slices.Contains(m.items[userID], listingID) {
		return false, nil
	}
	m.items[userID] = append(m.items[userID], listingID)
	return true, nil
}

func (m *Memory) Remove(_ context.Context, userID, listingID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.items[userID]
	idx := slices.Index(ids, listingID)
	if idx < 0 {
		return false, nil
	}
	m.items[userID] = slices.Delete(ids, idx, idx+1)
	return true, nil
}

func (m *Memory) Contains(_ context.Context, userID, listingID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Contains(m.items[userID], listingID), nil
}

func (m *Memory) List(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID{}, m.items[userID]...), nil
}

func (m *Memory) Clear(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := append([]uuid.UUID{}, m.items[userID]...)
	delete(m.items, userID)
	return removed, nil
}
