package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property_catalog_backend/internal/adapters"
	"property_catalog_backend/internal/adapters/storage"
	"property_catalog_backend/internal/contacts"
	contactsrepo "property_catalog_backend/internal/contacts/repository"
	"property_catalog_backend/internal/email"
	"property_catalog_backend/internal/events"
	apphttp "property_catalog_backend/internal/http"
	"property_catalog_backend/internal/http/router"
	"property_catalog_backend/internal/listings"
	listingsrepo "property_catalog_backend/internal/listings/repository"
	listingsservice "property_catalog_backend/internal/listings/service"
	"property_catalog_backend/internal/scheduler"
	"property_catalog_backend/internal/stats"
	statsrepo "property_catalog_backend/internal/stats/repository"
	statsservice "property_catalog_backend/internal/stats/service"
	"property_catalog_backend/internal/wishlist"
	wishlistrepo "property_catalog_backend/internal/wishlist/repository"
	"property_catalog_backend/platform/config"
	"property_catalog_backend/platform/db"
	"property_catalog_backend/platform/logger"
	"property_catalog_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	viewRecorder, closeScheduler := initViewRecorder(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	sender := email.NewSender(cfg)

	// Shared validator instance for dependency injection
	val := validator.New()

	storageSvc := initStorage(ctx, cfg, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	listingsRepo := listingsrepo.New(pool)
	listingsModule := listings.NewModule(
		listingsRepo,
		viewRecorder,
		storageSvc,
		listingsservice.SettingsFromConfig(cfg, cfg.GetMinioBucketListingMedia()),
		val,
		log,
	)
	listingsModule.RegisterHandlers(eventBus)

	// Anti-Corruption Layer: wishlist reads the catalog through its own port
	wishlistModule := wishlist.NewModule(
		wishlistrepo.New(pool),
		adapters.NewWishlistListingReader(listingsRepo),
		eventBus,
		log,
	)

	statsModule := stats.NewModule(statsrepo.New(pool), statsservice.SettingsFromConfig(cfg), log)

	contactsModule := contacts.NewModule(contactsrepo.New(pool), eventBus, sender, cfg, val, log)
	contactsModule.RegisterHandlers(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			listingsModule,
			wishlistModule,
			statsModule,
			contactsModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		eventBus.Wait()
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initStorage returns nil when MinIO is not configured, which disables media uploads.
func initStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) storage.StorageService {
	if !cfg.IsMinIOEnabled() {
		log.Warn("MINIO_ENDPOINT not configured; listing media uploads disabled")
		return nil
	}

	storageSvc, err := storage.NewMinIOService(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}

	bucket := cfg.GetMinioBucketListingMedia()
	if err := withRetry(ctx, log, "ensure listing media bucket", 5, 2*time.Second, func() error {
		return storageSvc.EnsureBucketExists(ctx, bucket)
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", bucket)
		panic("failed to ensure storage bucket exists: " + err.Error())
	}
	log.Info("storage service initialized", "listingMediaBucket", bucket)
	return storageSvc
}

// initViewRecorder returns nil when Redis is not configured so the listings
// service increments view counters in-process.
func initViewRecorder(cfg config.SchedulerConfig, log *logger.Logger) (listingsservice.ViewRecorder, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; view counters are incremented in-process")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize scheduler client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
