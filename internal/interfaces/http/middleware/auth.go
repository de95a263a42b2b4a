package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"depot/internal/infrastructure/auth"
	"depot/internal/shared/constants"
	"depot/internal/shared/logger"
	"depot/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the actor identity on the
// request context for downstream handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActorID, claims.ActorID)
		c.Set(constants.ContextKeyActorRole, string(claims.Role))

		c.Next()
	}
}

// ActorID reads the authenticated actor id set by RequireAuth.
func ActorID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyActorID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
