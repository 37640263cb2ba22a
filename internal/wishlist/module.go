// Package wishlist provides the saved-listings bounded context module.
package wishlist

import (
	"property_catalog_backend/internal/events"
	apphttp "property_catalog_backend/internal/http"
	"property_catalog_backend/internal/wishlist/handler"
	"property_catalog_backend/internal/wishlist/ports"
	"property_catalog_backend/internal/wishlist/repository"
	"property_catalog_backend/internal/wishlist/service"
	"property_catalog_backend/platform/logger"
)

// Module is the wishlist bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the wishlist module.
func NewModule(repo repository.Repository, listings ports.ListingReader, bus events.Bus, log *logger.Logger) *Module {
	svc := service.New(repo, listings, bus, log)
	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "wishlist"
}

// Service returns the wishlist service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts wishlist routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Public.GET("/wishlist", m.handler.List)

	ctx.Protected.DELETE("/wishlist", m.handler.Clear)
	ctx.Protected.POST("/wishlist/:listingId", m.handler.Add)
	ctx.Protected.DELETE("/wishlist/:listingId", m.handler.Remove)
	ctx.Protected.POST("/wishlist/:listingId/toggle", m.handler.Toggle)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
