package usecases

import (
	"context"

	"depot/internal/application/pallet/dto"
	"depot/internal/domain/pallet"
	"depot/internal/domain/system"
	"depot/internal/shared/biztime"
	"depot/internal/shared/logger"
	"depot/internal/shared/query"
)

type ListPalletsQuery struct {
	Filter    *query.FilterNode
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListPalletsResult struct {
	Pallets []*dto.PalletDTO
	Total   int64
}

type ListPalletsUseCase struct {
	palletRepo pallet.PalletRepository
	ledger     pallet.MembershipLedger
	systemRepo system.SystemRepository
	logger     logger.Interface
}

func NewListPalletsUseCase(
	palletRepo pallet.PalletRepository,
	ledger pallet.MembershipLedger,
	systemRepo system.SystemRepository,
	logger logger.Interface,
) *ListPalletsUseCase {
	return &ListPalletsUseCase{
		palletRepo: palletRepo,
		ledger:     ledger,
		systemRepo: systemRepo,
		logger:     logger,
	}
}

func (uc *ListPalletsUseCase) Execute(ctx context.Context, q ListPalletsQuery) (*ListPalletsResult, error) {
	filter := pallet.PalletFilter{
		Expr:       q.Filter,
		PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
		SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
	}

	pallets, total, err := uc.palletRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list pallets", "error", err)
		return nil, err
	}

	now := biztime.NowUTC()
	items := make([]*dto.PalletDTO, len(pallets))
	for i, p := range pallets {
		snapshot, err := buildSnapshot(ctx, uc.ledger, uc.systemRepo, p, now)
		if err != nil {
			uc.logger.Errorw("failed to build pallet snapshot",
				"pallet_id", p.ID(), "error", err)
			return nil, err
		}
		items[i] = dto.ToPalletDTO(p, snapshot)
	}

	return &ListPalletsResult{
		Pallets: items,
		Total:   total,
	}, nil
}
