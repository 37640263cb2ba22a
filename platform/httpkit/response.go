// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"errors"
	"net/http"

	"property_catalog_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody describes a failure with a stable kind and a human-readable message.
type ErrorBody struct {
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// JSON sends a success envelope with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, Envelope{Success: true, Data: payload})
}

// OK sends a 200 OK success envelope.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Error sends an error envelope with the given status code and message.
// The kind is derived from the status code.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, Envelope{Error: &ErrorBody{
		Kind:    kindForStatus(status).Code(),
		Message: message,
		Details: details,
	}})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Error: &ErrorBody{
		Kind:    kindForStatus(status).Code(),
		Message: message,
	}})
}

// HandleError maps domain errors to HTTP responses.
// Typed *apperr.Error values use their Kind for status and envelope kind.
// Any other error is reported as an opaque internal error.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.HTTPStatus(), Envelope{Error: &ErrorBody{
			Kind:    domainErr.Kind.Code(),
			Message: domainErr.Message,
			Details: domainErr.Details,
		}})
		return true
	}

	c.JSON(http.StatusInternalServerError, Envelope{Error: &ErrorBody{
		Kind:    apperr.KindInternal.Code(),
		Message: "internal server error",
	}})
	return true
}

func kindForStatus(status int) apperr.Kind {
	switch status {
	case http.StatusNotFound:
		return apperr.KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperr.KindValidation
	case http.StatusUnauthorized:
		return apperr.KindUnauthorized
	case http.StatusForbidden:
		return apperr.KindForbidden
	case http.StatusConflict:
		return apperr.KindConflict
	case http.StatusGone:
		return apperr.KindGone
	case http.StatusTooManyRequests:
		return apperr.KindBadRequest
	default:
		return apperr.KindInternal
	}
}
