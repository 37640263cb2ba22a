// Package http provides HTTP server infrastructure including the Module interface
// that all domain modules must implement for route registration.
package http

import (
	"property_catalog_backend/platform/config"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Each domain module implements this interface to encapsulate its own
// route setup, keeping the main router decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router group.
	// The RouterContext provides access to shared middleware and configuration.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
// Groups share the /api/v1 prefix and differ only in their middleware.
type RouterContext struct {
	// Engine is the root Gin engine for modules that need engine-level access.
	Engine *gin.Engine
	// V1 is the /api/v1 route group without identity resolution.
	V1 *gin.RouterGroup
	// Public resolves the caller when a token is present and otherwise
	// continues as anonymous.
	Public *gin.RouterGroup
	// Protected requires an authenticated caller.
	Protected *gin.RouterGroup
	// Agent requires the agent or admin role.
	Agent *gin.RouterGroup
	// Admin is the admin-only route group under /api/v1/admin.
	Admin *gin.RouterGroup
	// Config is the JWT configuration for auth middleware (scoped access).
	Config config.JWTConfig
	// InquiryRateLimit is the stricter limiter for public write endpoints.
	InquiryRateLimit gin.HandlerFunc
}
