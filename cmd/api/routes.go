package main

import (
	"context"
	"net/http"
	"time"

	"realestate-backoffice/internal/middleware"
	"realestate-backoffice/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.setupAPIRoutes()
	a.web.Register(a.Router)
}

func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := a.DB.PingContext(ctx); err != nil {
			logger.GlobalLogger.Errorf("Database ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database unavailable"})
			return
		}

		redis := "disabled"
		if a.Cache != nil {
			redis = "ok"
			if err := a.Cache.Ping(ctx); err != nil {
				logger.GlobalLogger.Warnf("Redis ping failed: %v", err)
				redis = "unavailable"
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": redis})
	})
}

// setupAPIRoutes mounts the REST API. Login stays public; everything else
// requires a bearer token when auth is enabled.
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	api.POST("/auth/login", a.handlers.auth.Login)

	protected := api.Group("")
	if a.Config.Auth.Enabled {
		protected.Use(middleware.AuthMiddleware(a.Config.Auth.JWTSecret))
	}

	a.handlers.clients.Register(protected.Group("/clients"))
	a.handlers.realtors.Register(protected.Group("/realtors"))
	a.handlers.properties.Register(protected.Group("/properties"))
	a.handlers.deals.Register(protected.Group("/deals"))
	a.handlers.payments.Register(protected.Group("/payments"))
	a.handlers.reference.Register(protected)
	a.handlers.geography.Register(protected.Group("/geography"))
}
