package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "depot/internal/interfaces/http/handlers/auth"
	"depot/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.Handler
	// RateLimiter guards the login endpoint; nil disables limiting.
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	limit := passthrough
	if config.RateLimiter != nil {
		limit = config.RateLimiter.Limit()
	}

	auth := engine.Group("/auth")
	{
		auth.POST("/login", limit, config.AuthHandler.Login)
	}
}
