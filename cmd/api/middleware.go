package main

import (
	"net/http"
	"time"

	"realestate-backoffice/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupMiddleware installs the global chain. Recovery wraps everything else;
// the error handler sits closest to the handlers so it sees their errors.
func (a *App) setupMiddleware() {
	a.Router.Use(gin.Recovery())
	a.Router.Use(middleware.LoggingMiddleware())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.SecureHeaders(middleware.SecureHeaderOptions{HSTS: a.Config.Server.HSTS}))
	a.Router.Use(cors.New(corsConfig(a.Config.Server.AllowedOrigins)))
	a.Router.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	a.Router.Use(middleware.ErrorHandler())
}

// corsConfig opens the API to any origin unless origins lists the allowed ones.
// Credentials are only allowed for a fixed list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
