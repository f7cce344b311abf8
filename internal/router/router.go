package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/nutrilog/backend/internal/api"
	"github.com/pageza/nutrilog/backend/internal/logging"
	"github.com/pageza/nutrilog/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(deps api.Dependencies, allowedOrigins ...string) *gin.Engine {
	router := gin.New()
	router.Use(logging.Middleware(deps.Log))

	// CORS middleware
	router.Use(middleware.CORS(allowedOrigins...))

	api.RegisterRoutes(router, deps)

	return router
}
