// Package router builds the gin engine from the application modules.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apphttp "property_catalog_backend/internal/http"
	"property_catalog_backend/platform/httpkit"
)

const healthTimeout = 2 * time.Second

// New creates the gin engine with the shared middleware and route groups and
// lets every module register its routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app.Config)))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(app.Config.GetRateLimitPerSecond()), app.Config.GetRateLimitBurst(), app.Logger)
	engine.Use(limiter.RateLimit())

	engine.GET("/api/health", healthHandler(app.Health))

	v1 := engine.Group("/api/v1")
	public := v1.Group("", httpkit.OptionalAuth(app.Config))
	protected := v1.Group("", httpkit.AuthRequired(app.Config))
	agent := protected.Group("", httpkit.RequireAnyRole(httpkit.RoleAgent, httpkit.RoleAdmin))
	admin := protected.Group("/admin", httpkit.RequireRole(httpkit.RoleAdmin))

	inquiryLimiter := httpkit.NewInquiryRateLimiter(app.Config.GetContactRateLimitPerMinute(), app.Logger)

	ctx := &apphttp.RouterContext{
		Engine:           engine,
		V1:               v1,
		Public:           public,
		Protected:        protected,
		Agent:            agent,
		Admin:            admin,
		Config:           app.Config,
		InquiryRateLimit: inquiryLimiter.RateLimit(),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Debug("module routes registered", "module", module.Name())
	}

	engine.NoRoute(func(c *gin.Context) {
		httpkit.Error(c, http.StatusNotFound, "route not found", nil)
	})

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = cfg.GetCORSOrigins()
	}
	if !config.AllowAllOrigins && len(config.AllowOrigins) == 0 {
		config.AllowOrigins = []string{"http://localhost:3000"}
	}
	return config
}

func healthHandler(health apphttp.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health == nil {
			httpkit.OK(c, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := health.Ping(ctx); err != nil {
			httpkit.Error(c, http.StatusServiceUnavailable, "database unavailable", nil)
			return
		}
		httpkit.OK(c, gin.H{"status": "ok"})
	}
}
