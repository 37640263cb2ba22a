package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Repository.
type Memory struct {
	mu       sync.Mutex
	contacts []Contact
	now      func() time.Time
}

// NewMemory creates an empty in-memory contacts store.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

var _ Repository = (*Memory)(nil)

func (m *Memory) Create(_ context.Context, params CreateContactParams) (Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := Contact{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Message:   params.Message,
		ListingID: params.ListingID,
		CreatedAt: m.now(),
	}
	m.contacts = append(m.contacts, c)
	return c, nil
}

func (m *Memory) List(_ context.Context, params ListContactsParams) ([]Contact, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sorted := append([]Contact{}, m.contacts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	total := len(sorted)
	start := min(max(params.Offset, 0), total)
	end := min(start+params.Limit, total)
	return sorted[start:end], total, nil
}

// CreatedTimes returns the creation time of every stored inquiry.
func (m *Memory) CreatedTimes() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Time, 0, len(m.contacts))
	for _, c := range m.contacts {
		out = append(out, c.CreatedAt)
	}
	return out
}

// SetClock replaces the clock used for CreatedAt.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}
