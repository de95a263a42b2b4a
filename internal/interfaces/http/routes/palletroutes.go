package routes

import (
	"github.com/gin-gonic/gin"

	pallethandlers "depot/internal/interfaces/http/handlers/pallet"
	"depot/internal/interfaces/http/middleware"
	"depot/internal/shared/authorization"
)

type PalletRouteConfig struct {
	PalletHandler  *pallethandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter guards mutating endpoints; nil disables limiting.
	RateLimiter *middleware.RateLimiter
}

func SetupPalletRoutes(engine *gin.Engine, config *PalletRouteConfig) {
	limit := passthrough
	if config.RateLimiter != nil {
		limit = config.RateLimiter.Limit()
	}

	pallets := engine.Group("/pallets")
	pallets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no number parameter)
		pallets.POST("", limit,
			config.PalletHandler.CreatePallet)
		pallets.GET("",
			config.PalletHandler.ListPallets)
		pallets.POST("/move", limit,
			config.PalletHandler.MoveMember)

		// Specific action endpoints (must come BEFORE /:number to avoid conflicts)
		pallets.PATCH("/:number/lock", limit,
			config.PalletHandler.SetLock)
		pallets.POST("/:number/release", limit,
			config.PalletHandler.ReleasePallet)
		pallets.POST("/:number/members", limit,
			config.PalletHandler.AddMember)
		pallets.DELETE("/:number/members/:tag", limit,
			config.PalletHandler.RemoveMember)

		// Generic parameterized routes (must come LAST)
		pallets.GET("/:number",
			config.PalletHandler.GetPallet)
		pallets.DELETE("/:number", limit,
			authorization.RequireAdmin(),
			config.PalletHandler.DeletePallet)
	}
}

func passthrough(c *gin.Context) {
	c.Next()
}
