package routes

import (
	"github.com/gin-gonic/gin"

	systemhandlers "depot/internal/interfaces/http/handlers/system"
	"depot/internal/interfaces/http/middleware"
)

type SystemRouteConfig struct {
	SystemHandler  *systemhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter guards mutating endpoints; nil disables limiting.
	RateLimiter *middleware.RateLimiter
}

func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	limit := passthrough
	if config.RateLimiter != nil {
		limit = config.RateLimiter.Limit()
	}

	systems := engine.Group("/systems")
	systems.Use(config.AuthMiddleware.RequireAuth())
	{
		systems.GET("/:tag/history",
			config.SystemHandler.GetHistory)
		systems.POST("/:tag/history", limit,
			config.SystemHandler.AppendHistory)
		systems.DELETE("/:tag/history/last", limit,
			config.SystemHandler.UndoLastHistory)
	}
}
