package service

import (
	"context"

	"github.com/google/uuid"

	"property_catalog_backend/internal/listings/repository"
)

// ViewRecorder performs or dispatches a single view-counter increment.
// Implementations must not retry.
type ViewRecorder interface {
	RecordView(ctx context.Context, listingID uuid.UUID) error
}

// DirectViewRecorder increments the counter through the repository.
type DirectViewRecorder struct {
	counters repository.Counters
}

// NewDirectViewRecorder creates a recorder backed by repository counters.
func NewDirectViewRecorder(counters repository.Counters) *DirectViewRecorder {
	return &DirectViewRecorder{counters: counters}
}

// RecordView increments the view counter once.
func (r *DirectViewRecorder) RecordView(ctx context.Context, listingID uuid.UUID) error {
	return r.counters.IncrementViews(ctx, listingID)
}

// IncrementViews applies a view increment. The scheduler worker calls it
// when views are dispatched as tasks.
func (s *Service) IncrementViews(ctx context.Context, listingID uuid.UUID) error {
	return s.repo.IncrementViews(ctx, listingID)
}

// recordView runs the increment on a detached goroutine. The caller's
// response never waits for it and failures are only logged.
func (s *Service) recordView(ctx context.Context, listingID uuid.UUID) {
	detached := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(detached, s.settings.ViewTimeout)
		defer cancel()
		if err := s.views.RecordView(ctx, listingID); err != nil {
			s.log.ViewIncrementFailed(listingID.String(), err)
		}
	}()
}
