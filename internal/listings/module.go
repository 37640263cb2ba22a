// Package listings provides the listings bounded context module.
package listings

import (
	"context"
	"errors"

	"property_catalog_backend/internal/adapters/storage"
	"property_catalog_backend/internal/events"
	apphttp "property_catalog_backend/internal/http"
	"property_catalog_backend/internal/listings/handler"
	"property_catalog_backend/internal/listings/repository"
	"property_catalog_backend/internal/listings/service"
	"property_catalog_backend/platform/logger"
	"property_catalog_backend/platform/validator"
)

// Module is the listings bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the listings module. views may be nil to
// increment view counters in-process; storageSvc may be nil to disable media.
func NewModule(repo repository.Repository, views service.ViewRecorder, storageSvc storage.StorageService, settings service.Settings, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, views, storageSvc, settings, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "listings"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts listing routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Public.GET("/listings", m.handler.List)
	ctx.Public.GET("/listings/search", m.handler.List)
	ctx.Public.GET("/listings/:id", m.handler.Get)
	ctx.Public.GET("/listings/:id/similar", m.handler.Similar)
	ctx.Public.GET("/listings/featured", m.handler.Featured)

	ctx.Agent.POST("/listings", m.handler.Create)
	ctx.Agent.PUT("/listings/:id", m.handler.Update)
	ctx.Agent.DELETE("/listings/:id", m.handler.Delete)
	ctx.Agent.POST("/listings/:id/media/presign", m.handler.PresignMedia)
	ctx.Agent.POST("/listings/:id/media", m.handler.AttachMedia)

	adminGroup := ctx.Admin.Group("/listings")
	adminGroup.GET("", m.handler.AdminList)
	adminGroup.POST("/ingest", m.handler.Ingest)
	adminGroup.PATCH("/:id/approval", m.handler.Review)
}

// RegisterHandlers subscribes to wishlist events to keep favorite counts.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.WishlistItemAdded{}.EventName(), m)
	bus.Subscribe(events.WishlistItemRemoved{}.EventName(), m)
	bus.Subscribe(events.WishlistCleared{}.EventName(), m)
}

// Handle routes events to the appropriate service method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.WishlistItemAdded:
		return m.service.AdjustFavorites(ctx, e.ListingID, 1)
	case events.WishlistItemRemoved:
		return m.service.AdjustFavorites(ctx, e.ListingID, -1)
	case events.WishlistCleared:
		var errs []error
		for _, id := range e.ListingIDs {
			if err := m.service.AdjustFavorites(ctx, id, -1); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	default:
		return nil
	}
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
