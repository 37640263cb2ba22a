package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/internal/listings/repository"
	"property_catalog_backend/internal/listings/transport"
	"property_catalog_backend/platform/apperr"
	"property_catalog_backend/platform/logger"
)

var errStorage = errors.New("connection reset by peer")

type failingRepo struct {
	*repository.Memory
	countErr error
	findErr  error
	getErr   error
}

func (f *failingRepo) Count(ctx context.Context, p domain.Predicate) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.Memory.Count(ctx, p)
}

func (f *failingRepo) Find(ctx context.Context, p domain.Predicate, page domain.Page) ([]domain.Listing, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.Memory.Find(ctx, p, page)
}

func (f *failingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	if f.getErr != nil {
		return domain.Listing{}, f.getErr
	}
	return f.Memory.GetByID(ctx, id)
}

type recordedView struct {
	id  uuid.UUID
	ctx context.Context
}

type blockingRecorder struct {
	release chan struct{}
	calls   chan recordedView
	err     error
}

func newBlockingRecorder(err error) *blockingRecorder {
	return &blockingRecorder{release: make(chan struct{}), calls: make(chan recordedView, 1), err: err}
}

func (r *blockingRecorder) RecordView(ctx context.Context, id uuid.UUID) error {
	<-r.release
	r.calls <- recordedView{id: id, ctx: ctx}
	return r.err
}

func newTestService(repo repository.Repository, views ViewRecorder) *Service {
	return New(repo, views, nil, DefaultSettings(), logger.Discard())
}

func listing(price float64) domain.Listing {
	return domain.Listing{
		Title:          "Listing",
		Price:          price,
		PropertyType:   domain.PropertyHouse,
		Category:       domain.CategoryResidential,
		Intent:         domain.IntentBuy,
		Bedrooms:       3,
		AreaSqft:       1200,
		Location:       domain.Location{City: "Austin", State: "TX"},
		Status:         domain.StatusAvailable,
		ApprovalStatus: domain.ApprovalApproved,
		IsActive:       true,
	}
}

func admin() domain.Caller { return domain.Caller{UserID: uuid.New(), Role: domain.RoleAdmin} }

func TestQueryPriceRangeEndToEnd(t *testing.T) {
	mem := repository.NewMemory()
	for _, price := range []float64{100, 200, 300, 400, 500} {
		mem.Put(listing(price))
	}
	svc := newTestService(mem, nil)

	lo, hi := 150.0, 450.0
	result, err := svc.Query(context.Background(), domain.Criteria{MinPrice: &lo, MaxPrice: &hi},
		domain.PageRequest{SortBy: "price", SortOrder: "asc"}, DefaultSettings().PublicPage, domain.Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 3 || len(result.Items) != 3 {
		t.Fatalf("expected 3 matches, got total=%d items=%d", result.Total, len(result.Items))
	}
	for i, want := range []float64{200, 300, 400} {
		if result.Items[i].Price != want {
			t.Fatalf("expected price %v at %d, got %v", want, i, result.Items[i].Price)
		}
	}
}

func TestQueryPagination(t *testing.T) {
	mem := repository.NewMemory()
	for i := 0; i < 25; i++ {
		mem.Put(listing(float64(100 + i)))
	}
	svc := newTestService(mem, nil)

	result, err := svc.ListCatalog(context.Background(), transport.ListingQuery{Page: "3"}, domain.Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 25 || result.TotalPages != 3 || result.Limit != 12 {
		t.Fatalf("expected total 25 over 3 pages of 12, got %+v", result)
	}
	if len(result.Items) != 1 || result.HasNext || !result.HasPrev {
		t.Fatalf("expected last page with one item, got %d items next=%v prev=%v", len(result.Items), result.HasNext, result.HasPrev)
	}

	adminResult, err := svc.AdminListCatalog(context.Background(), transport.ListingQuery{}, admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adminResult.Limit != 20 || len(adminResult.Items) != 20 {
		t.Fatalf("expected admin page of 20, got limit=%d items=%d", adminResult.Limit, len(adminResult.Items))
	}
}

func TestQueryHugePageIsEmpty(t *testing.T) {
	mem := repository.NewMemory()
	for i := 0; i < 5; i++ {
		mem.Put(listing(float64(100 + i)))
	}
	svc := newTestService(mem, nil)

	result, err := svc.ListCatalog(context.Background(), transport.ListingQuery{Page: "922337203685477581", Limit: "100"}, domain.Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 0 || result.Total != 5 || result.Page != domain.MaxPageNumber {
		t.Fatalf("expected an empty clamped page, got page=%d total=%d items=%d", result.Page, result.Total, len(result.Items))
	}
}

func TestQueryAnonymousNeverSeesHiddenListings(t *testing.T) {
	mem := repository.NewMemory()
	mem.Put(listing(100))
	pending := listing(100)
	pending.ApprovalStatus = domain.ApprovalPending
	mem.Put(pending)
	inactive := listing(100)
	inactive.IsActive = false
	mem.Put(inactive)
	svc := newTestService(mem, nil)

	result, err := svc.ListCatalog(context.Background(), transport.ListingQuery{ApprovalStatus: "pending", Status: "Sold"}, domain.Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected only the visible listing, got %d", result.Total)
	}
}

func TestQueryStorageFailureIsOpaque(t *testing.T) {
	tests := []struct {
		name string
		repo *failingRepo
	}{
		{"count", &failingRepo{Memory: repository.NewMemory(), countErr: errStorage}},
		{"find", &failingRepo{Memory: repository.NewMemory(), findErr: errStorage}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.repo, nil)
			result, err := svc.Query(context.Background(), domain.Criteria{}, domain.PageRequest{}, DefaultSettings().PublicPage, domain.Anonymous())
			if !apperr.Is(err, apperr.KindInternal) {
				t.Fatalf("expected internal error, got %v", err)
			}
			if result.Items != nil {
				t.Fatalf("expected no partial result, got %+v", result)
			}
		})
	}
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	svc := newTestService(repository.NewMemory(), nil)
	_, err := svc.Get(context.Background(), uuid.New(), domain.Anonymous())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetStorageFailureIsInternal(t *testing.T) {
	svc := newTestService(&failingRepo{Memory: repository.NewMemory(), getErr: errStorage}, nil)
	_, err := svc.Get(context.Background(), uuid.New(), domain.Anonymous())
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestGetHiddenListingIsNotFoundForAnonymous(t *testing.T) {
	mem := repository.NewMemory()
	pending := listing(100)
	pending.ApprovalStatus = domain.ApprovalPending
	stored := mem.Put(pending)
	svc := newTestService(mem, nil)

	if _, err := svc.Get(context.Background(), stored.ID, domain.Anonymous()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for anonymous caller, got %v", err)
	}
	if _, err := svc.Get(context.Background(), stored.ID, admin()); err != nil {
		t.Fatalf("expected admin to read pending listing, got %v", err)
	}
}

func TestGetDoesNotWaitForViewIncrement(t *testing.T) {
	mem := repository.NewMemory()
	stored := mem.Put(listing(100))
	recorder := newBlockingRecorder(nil)
	svc := newTestService(mem, recorder)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Get(ctx, stored.ID, domain.Anonymous())
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected Get to return while the view increment is still pending")
	}

	cancel()
	close(recorder.release)

	select {
	case call := <-recorder.calls:
		if call.id != stored.ID {
			t.Fatalf("expected view for %s, got %s", stored.ID, call.id)
		}
		if call.ctx.Err() != nil {
			t.Fatalf("expected detached context to survive request cancellation, got %v", call.ctx.Err())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected view increment to be dispatched")
	}
}

func TestGetSwallowsViewIncrementFailure(t *testing.T) {
	mem := repository.NewMemory()
	stored := mem.Put(listing(100))
	recorder := newBlockingRecorder(errStorage)
	close(recorder.release)
	svc := newTestService(mem, recorder)

	resp, err := svc.Get(context.Background(), stored.ID, domain.Anonymous())
	if err != nil {
		t.Fatalf("expected read to succeed despite view failure, got %v", err)
	}
	if resp.ID != stored.ID.String() {
		t.Fatalf("expected listing %s, got %s", stored.ID, resp.ID)
	}

	select {
	case <-recorder.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("expected exactly one view attempt")
	}
	select {
	case <-recorder.calls:
		t.Fatal("expected no retry after failure")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDirectViewRecorderIncrements(t *testing.T) {
	mem := repository.NewMemory()
	stored := mem.Put(listing(100))

	if err := NewDirectViewRecorder(mem).RecordView(context.Background(), stored.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := mem.GetByID(context.Background(), stored.ID)
	if got.ViewCount != 1 {
		t.Fatalf("expected view count 1, got %d", got.ViewCount)
	}
}
