package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"depot/internal/application/actor/usecases"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
	"depot/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type Handler struct {
	loginUC usecases.LoginExecutor
	logger  logger.Interface
}

func NewHandler(loginUC usecases.LoginExecutor) *Handler {
	return &Handler{
		loginUC: loginUC,
		logger:  logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
