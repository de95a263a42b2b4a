package pallet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"depot/internal/application/pallet/usecases"
	"depot/internal/interfaces/http/middleware"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
	"depot/internal/shared/utils"
)

type Handler struct {
	createPalletUC usecases.CreatePalletExecutor
	getPalletUC    usecases.GetPalletExecutor
	listPalletsUC  usecases.ListPalletsExecutor
	setLockUC      usecases.SetPalletLockExecutor
	releaseUC      usecases.ReleasePalletExecutor
	moveMemberUC   usecases.MovePalletMemberExecutor
	addMemberUC    usecases.AddPalletMemberExecutor
	removeMemberUC usecases.RemovePalletMemberExecutor
	deletePalletUC usecases.DeletePalletExecutor
	logger         logger.Interface
}

func NewHandler(
	createPalletUC usecases.CreatePalletExecutor,
	getPalletUC usecases.GetPalletExecutor,
	listPalletsUC usecases.ListPalletsExecutor,
	setLockUC usecases.SetPalletLockExecutor,
	releaseUC usecases.ReleasePalletExecutor,
	moveMemberUC usecases.MovePalletMemberExecutor,
	addMemberUC usecases.AddPalletMemberExecutor,
	removeMemberUC usecases.RemovePalletMemberExecutor,
	deletePalletUC usecases.DeletePalletExecutor,
) *Handler {
	return &Handler{
		createPalletUC: createPalletUC,
		getPalletUC:    getPalletUC,
		listPalletsUC:  listPalletsUC,
		setLockUC:      setLockUC,
		releaseUC:      releaseUC,
		moveMemberUC:   moveMemberUC,
		addMemberUC:    addMemberUC,
		removeMemberUC: removeMemberUC,
		deletePalletUC: deletePalletUC,
		logger:         logger.NewLogger(),
	}
}

// CreatePallet handles POST /pallets
func (h *Handler) CreatePallet(c *gin.Context) {
	var req CreatePalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create pallet", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.createPalletUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Pallet created successfully")
}

// GetPallet handles GET /pallets/:number
func (h *Handler) GetPallet(c *gin.Context) {
	result, err := h.getPalletUC.Execute(c.Request.Context(), usecases.GetPalletQuery{
		Number: c.Param("number"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPallets handles GET /pallets
func (h *Handler) ListPallets(c *gin.Context) {
	listQuery, err := parseListPalletsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPalletsUC.Execute(c.Request.Context(), listQuery)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Pallets, result.Total, listQuery.Page, listQuery.PageSize)
}

// SetLock handles PATCH /pallets/:number/lock
func (h *Handler) SetLock(c *gin.Context) {
	var req SetLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	actorID, _ := middleware.ActorID(c)
	cmd := usecases.SetPalletLockCommand{
		Number:  c.Param("number"),
		ActorID: actorID,
		Desired: *req.Locked,
	}

	result, err := h.setLockUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pallet lock updated", result)
}

// ReleasePallet handles POST /pallets/:number/release
func (h *Handler) ReleasePallet(c *gin.Context) {
	var req ReleasePalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	cmd := usecases.ReleasePalletCommand{
		Number:    c.Param("number"),
		DOANumber: req.DOANumber,
	}

	result, err := h.releaseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pallet released successfully", result)
}

// MoveMember handles POST /pallets/move
func (h *Handler) MoveMember(c *gin.Context) {
	var req MoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.moveMemberUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member moved successfully", result)
}

// AddMember handles POST /pallets/:number/members
func (h *Handler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	cmd := usecases.AddPalletMemberCommand{
		Number:    c.Param("number"),
		SystemTag: req.SystemTag,
	}

	result, err := h.addMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member added successfully")
}

// RemoveMember handles DELETE /pallets/:number/members/:tag
func (h *Handler) RemoveMember(c *gin.Context) {
	cmd := usecases.RemovePalletMemberCommand{
		Number:    c.Param("number"),
		SystemTag: c.Param("tag"),
	}

	result, err := h.removeMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member removed successfully", result)
}

// DeletePallet handles DELETE /pallets/:number
func (h *Handler) DeletePallet(c *gin.Context) {
	err := h.deletePalletUC.Execute(c.Request.Context(), usecases.DeletePalletCommand{
		Number: c.Param("number"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pallet deleted successfully", nil)
}
