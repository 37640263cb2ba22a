// Package handler exposes contact inquiries over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_catalog_backend/internal/contacts/service"
	"property_catalog_backend/internal/contacts/transport"
	"property_catalog_backend/platform/httpkit"
	"property_catalog_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles contact HTTP requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new contacts handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit stores a public inquiry.
// POST /api/v1/contacts
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// List returns inquiries for administrators.
// GET /api/v1/admin/contacts
func (h *Handler) List(c *gin.Context) {
	var q transport.ListContactsQuery
	_ = c.ShouldBindQuery(&q)

	result, err := h.svc.List(c.Request.Context(), q)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
