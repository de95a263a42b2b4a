package system

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"depot/internal/application/system/usecases"
)

type AppendHistoryRequest struct {
	ToLocationID uint   `json:"to_location_id" binding:"required"`
	Note         string `json:"note" binding:"max=500"`
}

func (r *AppendHistoryRequest) ToCommand(systemTag string, actorID uint) usecases.AppendLocationHistoryCommand {
	return usecases.AppendLocationHistoryCommand{
		SystemTag:    systemTag,
		ToLocationID: r.ToLocationID,
		ActorID:      actorID,
		Note:         r.Note,
	}
}

// parseHistoryLimit reads the optional limit parameter; zero means all
// entries.
func parseHistoryLimit(c *gin.Context) int {
	if val := c.Query("limit"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
