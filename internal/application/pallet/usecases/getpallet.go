package usecases

import (
	"context"

	"depot/internal/application/pallet/dto"
	"depot/internal/domain/pallet"
	"depot/internal/domain/system"
	"depot/internal/shared/biztime"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

type GetPalletQuery struct {
	Number string
}

type GetPalletUseCase struct {
	palletRepo pallet.PalletRepository
	ledger     pallet.MembershipLedger
	systemRepo system.SystemRepository
	logger     logger.Interface
}

func NewGetPalletUseCase(
	palletRepo pallet.PalletRepository,
	ledger pallet.MembershipLedger,
	systemRepo system.SystemRepository,
	logger logger.Interface,
) *GetPalletUseCase {
	return &GetPalletUseCase{
		palletRepo: palletRepo,
		ledger:     ledger,
		systemRepo: systemRepo,
		logger:     logger,
	}
}

func (uc *GetPalletUseCase) Execute(ctx context.Context, query GetPalletQuery) (*dto.PalletDTO, error) {
	p, err := uc.palletRepo.GetByNumber(ctx, query.Number)
	if err != nil {
		return nil, errors.NewNotFoundError("pallet not found", query.Number)
	}

	snapshot, err := buildSnapshot(ctx, uc.ledger, uc.systemRepo, p, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to build pallet snapshot",
			"pallet_id", p.ID(), "error", err)
		return nil, err
	}

	return dto.ToPalletDTO(p, snapshot), nil
}
