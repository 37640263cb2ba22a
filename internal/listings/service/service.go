// Package service implements the catalog query, detail and similarity
// operations plus the listing write path.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"property_catalog_backend/internal/adapters/storage"
	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/internal/listings/repository"
	"property_catalog_backend/internal/listings/transport"
	"property_catalog_backend/platform/apperr"
	"property_catalog_backend/platform/config"
	"property_catalog_backend/platform/logger"
)

const (
	msgQueryFailed  = "failed to query listings"
	msgLoadFailed   = "failed to load listing"
	msgSaveFailed   = "failed to save listing"
	msgNotFound     = "listing not found"
	msgNotPermitted = "not permitted to manage this listing"

	defaultViewTimeout = 5 * time.Second
)

// Settings are the query defaults of the catalog, fixed at construction.
type Settings struct {
	PublicPage    domain.PageDefaults
	AdminPage     domain.PageDefaults
	SimilarLimit  int
	SimilarBand   float64
	FeaturedLimit int
	ViewTimeout   time.Duration
	MediaBucket   string
}

// SettingsFromConfig reads Settings from configuration.
func SettingsFromConfig(cfg config.CatalogConfig, bucket string) Settings {
	return Settings{
		PublicPage: domain.PageDefaults{
			Limit:      cfg.GetPublicPageSize(),
			MaxLimit:   cfg.GetMaxPageSize(),
			SortFields: cfg.GetPublicSortFields(),
		},
		AdminPage: domain.PageDefaults{
			Limit:    cfg.GetAdminPageSize(),
			MaxLimit: cfg.GetMaxPageSize(),
		},
		SimilarLimit:  cfg.GetSimilarLimit(),
		SimilarBand:   cfg.GetSimilarPriceBand(),
		FeaturedLimit: cfg.GetFeaturedLimit(),
		ViewTimeout:   cfg.GetViewIncrementTimeout(),
		MediaBucket:   bucket,
	}
}

// DefaultSettings returns the stock catalog defaults.
func DefaultSettings() Settings {
	return Settings{
		PublicPage:    domain.PageDefaults{Limit: 12, MaxLimit: domain.HardMaxLimit, SortFields: []string{"price", "createdAt", "sqft"}},
		AdminPage:     domain.PageDefaults{Limit: 20, MaxLimit: domain.HardMaxLimit},
		SimilarLimit:  domain.DefaultSimilarLimit,
		SimilarBand:   domain.DefaultSimilarBand,
		FeaturedLimit: 6,
		ViewTimeout:   defaultViewTimeout,
		MediaBucket:   "listing-media",
	}
}

// Service provides business logic for listings.
type Service struct {
	repo     repository.Repository
	views    ViewRecorder
	storage  storage.StorageService
	settings Settings
	log      *logger.Logger
}

// New creates a new listings service. A nil views recorder increments the
// counter directly through the repository. A nil storage disables media.
func New(repo repository.Repository, views ViewRecorder, store storage.StorageService, settings Settings, log *logger.Logger) *Service {
	if views == nil {
		views = NewDirectViewRecorder(repo)
	}
	if settings.ViewTimeout <= 0 {
		settings.ViewTimeout = defaultViewTimeout
	}
	return &Service{repo: repo, views: views, storage: store, settings: settings, log: log}
}

// Query runs a filtered, paged catalog query. It issues a count and a page
// fetch; either failing fails the whole query.
func (s *Service) Query(ctx context.Context, criteria domain.Criteria, req domain.PageRequest, defaults domain.PageDefaults, caller domain.Caller) (domain.Result[domain.Listing], error) {
	predicate := domain.Build(criteria, caller)
	page := domain.NormalizePage(req, defaults)

	total, err := s.repo.Count(ctx, predicate)
	if err != nil {
		return domain.Result[domain.Listing]{}, apperr.Opaque(err, "listings.Query", msgQueryFailed)
	}

	items, err := s.repo.Find(ctx, predicate, page)
	if err != nil {
		return domain.Result[domain.Listing]{}, apperr.Opaque(err, "listings.Query", msgQueryFailed)
	}

	return domain.NewResult(items, total, page), nil
}

// ListCatalog serves the public listing and search endpoints.
func (s *Service) ListCatalog(ctx context.Context, q transport.ListingQuery, caller domain.Caller) (transport.ListingListResponse, error) {
	result, err := s.Query(ctx, q.Criteria(), q.PageRequest(), s.settings.PublicPage, caller)
	if err != nil {
		return transport.ListingListResponse{}, err
	}
	return transport.ToListingListResponse(result), nil
}

// AdminListCatalog serves the administrative listing endpoint.
func (s *Service) AdminListCatalog(ctx context.Context, q transport.ListingQuery, caller domain.Caller) (transport.ListingListResponse, error) {
	result, err := s.Query(ctx, q.Criteria(), q.PageRequest(), s.settings.AdminPage, caller)
	if err != nil {
		return transport.ListingListResponse{}, err
	}
	return transport.ToListingListResponse(result), nil
}

// Get returns a single listing and schedules a view increment without
// waiting for it. Listings the caller may not see are reported as missing.
func (s *Service) Get(ctx context.Context, id uuid.UUID, caller domain.Caller) (transport.ListingResponse, error) {
	l, err := s.loadVisible(ctx, id, caller)
	if err != nil {
		return transport.ListingResponse{}, err
	}

	s.recordView(ctx, l.ID)
	return transport.ToListingResponse(l), nil
}

// Similar returns listings comparable to the given one, newest first. An
// empty result is not an error.
func (s *Service) Similar(ctx context.Context, id uuid.UUID, limit int, caller domain.Caller) ([]transport.ListingResponse, error) {
	source, err := s.loadVisible(ctx, id, caller)
	if err != nil {
		return nil, err
	}

	predicate := domain.Restrict(domain.SimilarTo(source, s.settings.SimilarBand), caller)
	items, err := s.repo.Find(ctx, predicate, s.fixedPage(limit, s.settings.SimilarLimit))
	if err != nil {
		return nil, apperr.Opaque(err, "listings.Similar", msgQueryFailed)
	}
	return transport.ToListingResponses(items), nil
}

// Featured returns the newest publicly visible featured listings.
func (s *Service) Featured(ctx context.Context, limit int) ([]transport.ListingResponse, error) {
	items, err := s.repo.Find(ctx, domain.Featured(), s.fixedPage(limit, s.settings.FeaturedLimit))
	if err != nil {
		return nil, apperr.Opaque(err, "listings.Featured", msgQueryFailed)
	}
	return transport.ToListingResponses(items), nil
}

func (s *Service) fixedPage(limit, fallback int) domain.Page {
	if fallback < 1 {
		fallback = 1
	}
	return domain.NormalizePage(
		domain.PageRequest{Limit: limit, SortBy: domain.DefaultSortField},
		domain.PageDefaults{Limit: fallback, MaxLimit: domain.HardMaxLimit},
	)
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Listing{}, apperr.Opaque(err, "listings.Load", msgLoadFailed)
	}
	return l, nil
}

func (s *Service) loadVisible(ctx context.Context, id uuid.UUID, caller domain.Caller) (domain.Listing, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	if !caller.CanSeeUnpublished() && !l.IsPubliclyVisible() {
		return domain.Listing{}, apperr.NotFound(msgNotFound)
	}
	return l, nil
}
