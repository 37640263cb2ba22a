// Package handler exposes catalog statistics over HTTP.
package handler

import (
	"github.com/gin-gonic/gin"

	"property_catalog_backend/internal/stats/service"
	"property_catalog_backend/internal/stats/transport"
	"property_catalog_backend/platform/httpkit"
)

// Handler handles statistics HTTP requests.
type Handler struct {
	svc *service.Service
}

// New creates a new statistics handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Get returns the statistics report.
// GET /api/v1/admin/stats?days=30&scope=all
func (h *Handler) Get(c *gin.Context) {
	var q transport.StatsQuery
	_ = c.ShouldBindQuery(&q)

	result, err := h.svc.Stats(c.Request.Context(), q)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
