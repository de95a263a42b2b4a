package authorization

import (
	"github.com/gin-gonic/gin"

	"depot/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := c.GetString(constants.ContextKeyActorRole)
		if actorRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
