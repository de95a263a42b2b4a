package pallet

import (
	"github.com/gin-gonic/gin"

	"depot/internal/application/pallet/usecases"
	"depot/internal/shared/errors"
	"depot/internal/shared/query"
	"depot/internal/shared/utils"
)

type CreatePalletRequest struct {
	PartNumber  string `json:"part_number" binding:"required,max=64"`
	FactoryCode string `json:"factory_code" binding:"required,max=16"`
}

func (r *CreatePalletRequest) ToCommand() usecases.CreatePalletCommand {
	return usecases.CreatePalletCommand{
		PartNumber:  r.PartNumber,
		FactoryCode: r.FactoryCode,
	}
}

type SetLockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

type ReleasePalletRequest struct {
	DOANumber string `json:"doa_number" binding:"required,max=64"`
}

type MoveMemberRequest struct {
	SystemTag  string `json:"system_tag" binding:"required,max=64"`
	FromNumber string `json:"from_number" binding:"required,max=64"`
	ToNumber   string `json:"to_number" binding:"required,max=64"`
}

func (r *MoveMemberRequest) ToCommand() usecases.MovePalletMemberCommand {
	return usecases.MovePalletMemberCommand{
		SystemTag:  r.SystemTag,
		FromNumber: r.FromNumber,
		ToNumber:   r.ToNumber,
	}
}

type AddMemberRequest struct {
	SystemTag string `json:"system_tag" binding:"required,max=64"`
}

// parseListPalletsQuery builds the list query from pagination, sort, and the
// optional JSON predicate tree in the filter parameter.
func parseListPalletsQuery(c *gin.Context) (usecases.ListPalletsQuery, error) {
	pagination := utils.ParsePagination(c)

	node, err := query.ParseFilterNode(c.Query("filter"))
	if err != nil {
		return usecases.ListPalletsQuery{}, errors.NewBadRequestError(err.Error())
	}

	return usecases.ListPalletsQuery{
		Filter:    node,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}, nil
}
