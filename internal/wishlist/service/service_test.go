package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"property_catalog_backend/internal/events"
	"property_catalog_backend/internal/wishlist/ports"
	"property_catalog_backend/internal/wishlist/repository"
	"property_catalog_backend/internal/wishlist/transport"
	"property_catalog_backend/platform/apperr"
	"property_catalog_backend/platform/logger"
)

type fakeCatalog struct {
	listings map[uuid.UUID]ports.SavedListing
	err      error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{listings: map[uuid.UUID]ports.SavedListing{}}
}

func (f *fakeCatalog) add(title string) uuid.UUID {
	id := uuid.New()
	f.listings[id] = ports.SavedListing{ID: id, Title: title, Status: "Available"}
	return id
}

func (f *fakeCatalog) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.listings[id]
	return ok, nil
}

func (f *fakeCatalog) setStatus(id uuid.UUID, status string) {
	l := f.listings[id]
	l.Status = status
	f.listings[id] = l
}

func (f *fakeCatalog) GetSavedListings(_ context.Context, ids []uuid.UUID) ([]ports.SavedListing, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]ports.SavedListing, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if l, ok := f.listings[ids[i]]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) PublishSync(ctx context.Context, e events.Event) error {
	b.Publish(ctx, e)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.EventName())
	}
	return out
}

func newTestService() (*Service, *repository.Memory, *fakeCatalog, *recordingBus) {
	repo := repository.NewMemory()
	catalog := newFakeCatalog()
	bus := &recordingBus{}
	return New(repo, catalog, bus, logger.Discard()), repo, catalog, bus
}

func TestAddDuplicateIsSilentSuccess(t *testing.T) {
	svc, repo, catalog, bus := newTestService()
	ctx := context.Background()
	user := uuid.New()
	id := catalog.add("Loft")

	first, err := svc.Add(ctx, user, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Added || !first.IsMember {
		t.Fatalf("expected first add to insert, got %+v", first)
	}

	second, err := svc.Add(ctx, user, id)
	if err != nil {
		t.Fatalf("expected duplicate add to succeed, got %v", err)
	}
	if second.Added || !second.IsMember || second.Message != transport.MessageAlreadySaved {
		t.Fatalf("expected already-saved signal, got %+v", second)
	}

	ids, _ := repo.List(ctx, user)
	if len(ids) != 1 {
		t.Fatalf("expected a single entry, got %d", len(ids))
	}
	if names := bus.names(); len(names) != 1 || names[0] != "wishlist.item.added" {
		t.Fatalf("expected one added event, got %v", names)
	}
}

func TestAddUnknownListing(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Add(context.Background(), uuid.New(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddListingThatIsNoLongerAvailable(t *testing.T) {
	svc, repo, catalog, _ := newTestService()
	ctx := context.Background()
	user := uuid.New()
	id := catalog.add("Sold cottage")
	catalog.setStatus(id, "Sold")

	res, err := svc.Add(ctx, user, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Added || !res.IsMember {
		t.Fatalf("expected an existing listing to be saveable, got %+v", res)
	}
	if ok, _ := repo.Contains(ctx, user, id); !ok {
		t.Fatalf("expected listing in the set")
	}
}

func TestRemoveAbsentIsReportedDistinctly(t *testing.T) {
	svc, _, _, bus := newTestService()

	_, err := svc.Remove(context.Background(), uuid.New(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(bus.names()) != 0 {
		t.Fatalf("expected no events, got %v", bus.names())
	}
}

func TestRemovePresent(t *testing.T) {
	svc, _, catalog, bus := newTestService()
	ctx := context.Background()
	user := uuid.New()
	id := catalog.add("Loft")
	_, _ = svc.Add(ctx, user, id)

	res, err := svc.Remove(ctx, user, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsMember {
		t.Fatalf("expected isMember=false after remove")
	}
	names := bus.names()
	if names[len(names)-1] != "wishlist.item.removed" {
		t.Fatalf("expected removed event, got %v", names)
	}
}

func TestToggleIsSelfInverse(t *testing.T) {
	svc, repo, catalog, _ := newTestService()
	ctx := context.Background()
	user := uuid.New()
	id := catalog.add("Loft")

	before, _ := repo.Contains(ctx, user, id)

	on, err := svc.Toggle(ctx, user, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !on.IsMember {
		t.Fatalf("expected first toggle to add")
	}

	off, err := svc.Toggle(ctx, user, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off.IsMember {
		t.Fatalf("expected second toggle to remove")
	}

	after, _ := repo.Contains(ctx, user, id)
	if before != after {
		t.Fatalf("expected membership %v after two toggles, got %v", before, after)
	}
}

func TestToggleIsSelfInverseAfterListingChangesStatus(t *testing.T) {
	svc, repo, catalog, _ := newTestService()
	ctx := context.Background()
	user := uuid.New()
	id := catalog.add("Loft")
	if _, err := svc.Add(ctx, user, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	catalog.setStatus(id, "UnderContract")

	off, err := svc.Toggle(ctx, user, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off.IsMember {
		t.Fatalf("expected first toggle to remove")
	}

	on, err := svc.Toggle(ctx, user, id)
	if err != nil {
		t.Fatalf("expected second toggle to re-add, got %v", err)
	}
	if !on.IsMember {
		t.Fatalf("expected second toggle to restore membership, got %+v", on)
	}

	ids, _ := repo.List(ctx, user)
	if len(ids) != 1 || ids[0] != id {
		t.Fatalf("expected the set to be back to one entry, got %v", ids)
	}
}

func TestToggleRemovesDanglingID(t *testing.T) {
	svc, repo, catalog, _ := newTestService()
	ctx := context.Background()
	user := uuid.New()
	id := catalog.add("Loft")
	_, _ = svc.Add(ctx, user, id)
	delete(catalog.listings, id)

	res, err := svc.Toggle(ctx, user, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsMember {
		t.Fatalf("expected toggle to remove the dangling id")
	}
	if ok, _ := repo.Contains(ctx, user, id); ok {
		t.Fatalf("expected id to be gone from storage")
	}
}

func TestListDropsDanglingIDsWithoutMutatingSet(t *testing.T) {
	svc, repo, catalog, _ := newTestService()
	ctx := context.Background()
	user := uuid.New()
	first := catalog.add("First")
	gone := catalog.add("Gone")
	last := catalog.add("Last")
	for _, id := range []uuid.UUID{first, gone, last} {
		if _, err := svc.Add(ctx, user, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	delete(catalog.listings, gone)

	res, err := svc.List(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count != 2 || len(res.Items) != 2 {
		t.Fatalf("expected 2 materialised items, got %d", len(res.Items))
	}
	if res.Items[0].Title != "First" || res.Items[1].Title != "Last" {
		t.Fatalf("expected saved order to be kept, got %s, %s", res.Items[0].Title, res.Items[1].Title)
	}

	ids, _ := repo.List(ctx, user)
	if len(ids) != 3 {
		t.Fatalf("expected underlying set to keep 3 ids, got %d", len(ids))
	}
}

func TestListAnonymousIsEmptyWithMessage(t *testing.T) {
	svc, _, _, _ := newTestService()

	res, err := svc.List(context.Background(), uuid.Nil)
	if err != nil {
		t.Fatalf("expected no error for anonymous caller, got %v", err)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty non-nil items")
	}
	if res.Message != transport.MessageSignInRequired {
		t.Fatalf("expected sign-in message, got %q", res.Message)
	}
}

func TestListCatalogFailureIsOpaque(t *testing.T) {
	svc, _, catalog, _ := newTestService()
	ctx := context.Background()
	user := uuid.New()
	id := catalog.add("Loft")
	_, _ = svc.Add(ctx, user, id)
	catalog.err = errors.New("connection reset")

	_, err := svc.List(ctx, user)
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestClearPublishesRemovedIDs(t *testing.T) {
	svc, _, catalog, bus := newTestService()
	ctx := context.Background()
	user := uuid.New()
	_, _ = svc.Add(ctx, user, catalog.add("A"))
	_, _ = svc.Add(ctx, user, catalog.add("B"))

	res, err := svc.Clear(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Removed != 2 {
		t.Fatalf("expected 2 removed, got %d", res.Removed)
	}

	bus.mu.Lock()
	last := bus.events[len(bus.events)-1]
	bus.mu.Unlock()
	cleared, ok := last.(events.WishlistCleared)
	if !ok || len(cleared.ListingIDs) != 2 {
		t.Fatalf("expected cleared event with 2 ids, got %#v", last)
	}
}

func TestClearEmptyPublishesNothing(t *testing.T) {
	svc, _, _, bus := newTestService()

	res, err := svc.Clear(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Removed != 0 || len(bus.names()) != 0 {
		t.Fatalf("expected nothing removed and no events, got %d / %v", res.Removed, bus.names())
	}
}
