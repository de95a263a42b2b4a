package system

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"depot/internal/application/system/usecases"
	"depot/internal/interfaces/http/middleware"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
	"depot/internal/shared/utils"
)

type Handler struct {
	appendHistoryUC usecases.AppendLocationHistoryExecutor
	undoHistoryUC   usecases.UndoLocationHistoryExecutor
	getHistoryUC    usecases.GetSystemHistoryExecutor
	logger          logger.Interface
}

func NewHandler(
	appendHistoryUC usecases.AppendLocationHistoryExecutor,
	undoHistoryUC usecases.UndoLocationHistoryExecutor,
	getHistoryUC usecases.GetSystemHistoryExecutor,
) *Handler {
	return &Handler{
		appendHistoryUC: appendHistoryUC,
		undoHistoryUC:   undoHistoryUC,
		getHistoryUC:    getHistoryUC,
		logger:          logger.NewLogger(),
	}
}

// AppendHistory handles POST /systems/:tag/history
func (h *Handler) AppendHistory(c *gin.Context) {
	var req AppendHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for append history", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	actorID, _ := middleware.ActorID(c)
	cmd := req.ToCommand(c.Param("tag"), actorID)

	result, err := h.appendHistoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Location recorded successfully")
}

// UndoLastHistory handles DELETE /systems/:tag/history/last
func (h *Handler) UndoLastHistory(c *gin.Context) {
	actorID, _ := middleware.ActorID(c)
	cmd := usecases.UndoLocationHistoryCommand{
		SystemTag: c.Param("tag"),
		ActorID:   actorID,
	}

	result, err := h.undoHistoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Last location entry undone", result)
}

// GetHistory handles GET /systems/:tag/history
func (h *Handler) GetHistory(c *gin.Context) {
	result, err := h.getHistoryUC.Execute(c.Request.Context(), usecases.GetSystemHistoryQuery{
		SystemTag: c.Param("tag"),
		Limit:     parseHistoryLimit(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
