package scheduler

import (
	"context"
	"errors"
	"testing"

	"property_catalog_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type testSchedulerConfig struct {
	redisURL string
}

func (c testSchedulerConfig) GetRedisURL() string       { return c.redisURL }
func (c testSchedulerConfig) GetRedisTLSInsecure() bool { return false }
func (c testSchedulerConfig) GetAsynqQueueName() string { return "" }
func (c testSchedulerConfig) GetAsynqConcurrency() int  { return 1 }

func TestRecordViewEnqueuesTask(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(testSchedulerConfig{redisURL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	if err := client.RecordView(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected enqueue error: %v", err)
	}

	pending, err := mr.List("asynq:{default}:pending")
	if err != nil {
		t.Fatalf("expected pending list, got %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending task, got %d", len(pending))
	}
}

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(testSchedulerConfig{}); err == nil {
		t.Fatalf("expected error without redis url")
	}
}

func TestNilClientRecordViewIsNoop(t *testing.T) {
	var c *Client
	if err := c.RecordView(context.Background(), uuid.New()); err != nil {
		t.Fatalf("expected nil client to be a no-op, got %v", err)
	}
}

type fakeCounter struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeCounter) IncrementViews(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, id)
	return f.err
}

func TestHandleListingViewIncrement(t *testing.T) {
	counter := &fakeCounter{}
	w := &Worker{counter: counter, log: logger.Discard()}
	id := uuid.New()

	task, err := NewListingViewIncrementTask(ListingViewIncrementPayload{ListingID: id.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.handleListingViewIncrement(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counter.calls) != 1 || counter.calls[0] != id {
		t.Fatalf("expected one increment for %s, got %v", id, counter.calls)
	}
}

func TestHandleListingViewIncrementSkipsRetry(t *testing.T) {
	w := &Worker{counter: &fakeCounter{err: errors.New("db down")}, log: logger.Discard()}

	task, _ := NewListingViewIncrementTask(ListingViewIncrementPayload{ListingID: uuid.NewString()})
	err := w.handleListingViewIncrement(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}

	bad := asynq.NewTask(TaskListingViewIncrement, []byte(`{"listingId":"nope"}`))
	if err := w.handleListingViewIncrement(context.Background(), bad); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry for bad id, got %v", err)
	}
}
