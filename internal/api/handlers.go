package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/nutrilog/backend/internal/middleware"
	"github.com/pageza/nutrilog/backend/internal/service"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Catalog service.ICatalogService
	Meals   service.IMealService
	Tokens  middleware.TokenValidator
	// SearchLimiter is optional; search is unlimited without it.
	SearchLimiter middleware.Limiter
	// Ping reports database health. Optional.
	Ping func(ctx context.Context) error
	Log  logrus.FieldLogger
}

// HealthCheck returns the health status of the API
func HealthCheck(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		dbStatus := "unconfigured"
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				deps.Log.WithError(err).Warn("database health check failed")
				status, code, dbStatus = "degraded", http.StatusServiceUnavailable, "unreachable"
			} else {
				dbStatus = "ok"
			}
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbStatus,
			"catalog":  deps.Catalog.Counts(),
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck(deps))

	var searchLimit gin.HandlerFunc
	if deps.SearchLimiter != nil {
		searchLimit = middleware.RateLimitByClientIP(deps.SearchLimiter, deps.Log)
	}

	v1 := router.Group("/api/v1")
	NewCatalogHandler(deps.Catalog, searchLimit, deps.Log).RegisterRoutes(v1)
	if deps.Meals != nil {
		NewMealHandler(deps.Meals, deps.Tokens, deps.Log).RegisterRoutes(v1)
	}
}
