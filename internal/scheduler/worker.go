package scheduler

import (
	"context"
	"fmt"

	"property_catalog_backend/platform/config"
	"property_catalog_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ViewCounter applies a view increment to storage.
type ViewCounter interface {
	IncrementViews(ctx context.Context, listingID uuid.UUID) error
}

type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	counter ViewCounter
	log     *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, counter ViewCounter, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
	})

	w := &Worker{
		server:  server,
		mux:     asynq.NewServeMux(),
		counter: counter,
		log:     log,
	}
	w.mux.HandleFunc(TaskListingViewIncrement, w.handleListingViewIncrement)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleListingViewIncrement(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseListingViewIncrementPayload(task)
	if err != nil {
		return fmt.Errorf("parse view payload: %w: %w", err, asynq.SkipRetry)
	}

	listingID, err := uuid.Parse(payload.ListingID)
	if err != nil {
		return fmt.Errorf("parse listing id: %w: %w", err, asynq.SkipRetry)
	}

	if err := w.counter.IncrementViews(ctx, listingID); err != nil {
		w.log.ViewIncrementFailed(payload.ListingID, err)
		return fmt.Errorf("increment views: %w: %w", err, asynq.SkipRetry)
	}
	return nil
}
