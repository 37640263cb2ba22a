// Package handler exposes the listings service over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/internal/listings/service"
	"property_catalog_backend/internal/listings/transport"
	"property_catalog_backend/platform/httpkit"
	"property_catalog_backend/platform/validator"
)

// Handler handles HTTP requests for listings.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid listing id"
)

// New creates a new listings handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// CallerFrom resolves the domain caller from the request identity.
func CallerFrom(c *gin.Context) domain.Caller {
	id := httpkit.GetIdentity(c)
	if !id.IsAuthenticated() {
		return domain.Anonymous()
	}
	role := domain.RoleUser
	switch {
	case id.HasRole(httpkit.RoleAdmin):
		role = domain.RoleAdmin
	case id.HasRole(httpkit.RoleAgent):
		role = domain.RoleAgent
	}
	return domain.Caller{UserID: id.UserID(), Role: role}
}

// List returns the filtered catalog.
// GET /api/v1/listings and GET /api/v1/listings/search
func (h *Handler) List(c *gin.Context) {
	var q transport.ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ListCatalog(c.Request.Context(), q, CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AdminList returns the catalog with the administrative defaults.
// GET /api/v1/admin/listings
func (h *Handler) AdminList(c *gin.Context) {
	var q transport.ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.AdminListCatalog(c.Request.Context(), q, CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Featured returns the featured strip.
// GET /api/v1/listings/featured
func (h *Handler) Featured(c *gin.Context) {
	var q transport.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.Featured(c.Request.Context(), q.Value())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Get returns one listing.
// GET /api/v1/listings/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.Get(c.Request.Context(), id, CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Similar returns comparable listings.
// GET /api/v1/listings/:id/similar
func (h *Handler) Similar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q transport.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.Similar(c.Request.Context(), id, q.Value(), CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Create stores a new listing.
// POST /api/v1/listings
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateListingRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req, CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// Ingest stores a listing from an external feed.
// POST /api/v1/admin/listings/ingest
func (h *Handler) Ingest(c *gin.Context) {
	var req transport.CreateListingRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.Ingest(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// Update applies a partial update.
// PUT /api/v1/listings/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.UpdateListingRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.Update(c.Request.Context(), id, req, CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Delete removes a listing.
// DELETE /api/v1/listings/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, CallerFrom(c)); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"message": "listing deleted"})
}

// Review sets the moderation state.
// PATCH /api/v1/admin/listings/:id/approval
func (h *Handler) Review(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.ReviewListingRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.Review(c.Request.Context(), id, req, CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// PresignMedia returns an upload URL for a listing file.
// POST /api/v1/listings/:id/media/presign
func (h *Handler) PresignMedia(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.PresignMediaRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.PresignMedia(c.Request.Context(), id, req, CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AttachMedia records an uploaded file on the listing.
// POST /api/v1/listings/:id/media
func (h *Handler) AttachMedia(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.AttachMediaRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.AttachMedia(c.Request.Context(), id, req, CallerFrom(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return false
	}
	return true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}
