// Package handler exposes wishlist operations over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"property_catalog_backend/internal/wishlist/service"
	"property_catalog_backend/platform/httpkit"
)

const msgInvalidListingID = "invalid listing id"

// Handler handles wishlist HTTP requests.
type Handler struct {
	svc *service.Service
}

// New creates a new wishlist handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// List returns the caller's saved listings. Anonymous callers get an empty list.
// GET /api/v1/wishlist
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), httpkit.GetIdentity(c).UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Add saves a listing.
// POST /api/v1/wishlist/:listingId
func (h *Handler) Add(c *gin.Context) {
	userID, listingID, ok := resolve(c)
	if !ok {
		return
	}

	result, err := h.svc.Add(c.Request.Context(), userID, listingID)
	if httpkit.HandleError(c, err) {
		return
	}
	status := http.StatusOK
	if result.Added {
		status = http.StatusCreated
	}
	httpkit.JSON(c, status, result)
}

// Remove deletes a listing from the wishlist.
// DELETE /api/v1/wishlist/:listingId
func (h *Handler) Remove(c *gin.Context) {
	userID, listingID, ok := resolve(c)
	if !ok {
		return
	}

	result, err := h.svc.Remove(c.Request.Context(), userID, listingID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Toggle flips membership of a listing.
// POST /api/v1/wishlist/:listingId/toggle
func (h *Handler) Toggle(c *gin.Context) {
	userID, listingID, ok := resolve(c)
	if !ok {
		return
	}

	result, err := h.svc.Toggle(c.Request.Context(), userID, listingID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Clear empties the wishlist.
// DELETE /api/v1/wishlist
func (h *Handler) Clear(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Clear(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func resolve(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return uuid.Nil, uuid.Nil, false
	}
	listingID, err := uuid.Parse(c.Param("listingId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidListingID, nil)
		return uuid.Nil, uuid.Nil, false
	}
	return identity.UserID(), listingID, true
}
