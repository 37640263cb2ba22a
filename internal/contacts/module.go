// Package contacts provides the contact inquiry module.
package contacts

import (
	"property_catalog_backend/internal/contacts/handler"
	"property_catalog_backend/internal/contacts/repository"
	"property_catalog_backend/internal/contacts/service"
	"property_catalog_backend/internal/email"
	"property_catalog_backend/internal/events"
	apphttp "property_catalog_backend/internal/http"
	"property_catalog_backend/platform/config"
	"property_catalog_backend/platform/logger"
	"property_catalog_backend/platform/validator"
)

// Module is the contacts module implementing http.Module.
type Module struct {
	handler  *handler.Handler
	service  *service.Service
	notifier *service.Notifier
}

// NewModule creates and initializes the contacts module.
func NewModule(repo repository.Repository, bus events.Bus, sender email.Sender, cfg config.ContactConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, bus, cfg.GetPhoneDefaultRegion(), log)
	return &Module{
		handler:  handler.New(svc, val),
		service:  svc,
		notifier: service.NewNotifier(sender, cfg.GetContactInbox(), log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "contacts"
}

// Service returns the contacts service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts contact routes. Submission is public and rate limited.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	if ctx.InquiryRateLimit != nil {
		ctx.V1.POST("/contacts", ctx.InquiryRateLimit, m.handler.Submit)
	} else {
		ctx.V1.POST("/contacts", m.handler.Submit)
	}
	ctx.Admin.GET("/contacts", m.handler.List)
}

// RegisterHandlers subscribes the inbox notifier to contact events.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.ContactSubmitted{}.EventName(), m.notifier)
}

var _ apphttp.Module = (*Module)(nil)
