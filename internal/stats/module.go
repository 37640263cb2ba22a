// Package stats provides the catalog statistics module.
package stats

import (
	apphttp "property_catalog_backend/internal/http"
	"property_catalog_backend/internal/stats/handler"
	"property_catalog_backend/internal/stats/repository"
	"property_catalog_backend/internal/stats/service"
	"property_catalog_backend/platform/logger"
)

// Module is the statistics module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the statistics module.
func NewModule(source repository.Source, settings service.Settings, log *logger.Logger) *Module {
	svc := service.New(source, settings, log)
	return &Module{handler: handler.New(svc), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "stats"
}

// Service returns the statistics service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the statistics route on the admin group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/stats", m.handler.Get)
}

var _ apphttp.Module = (*Module)(nil)
