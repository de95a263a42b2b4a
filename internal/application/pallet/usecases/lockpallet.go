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

type SetPalletLockCommand struct {
	Number  string
	ActorID uint
	Desired bool
}

type SetPalletLockUseCase struct {
	palletRepo pallet.PalletRepository
	ledger     pallet.MembershipLedger
	systemRepo system.SystemRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewSetPalletLockUseCase(
	palletRepo pallet.PalletRepository,
	ledger pallet.MembershipLedger,
	systemRepo system.SystemRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *SetPalletLockUseCase {
	return &SetPalletLockUseCase{
		palletRepo: palletRepo,
		ledger:     ledger,
		systemRepo: systemRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *SetPalletLockUseCase) Execute(ctx context.Context, cmd SetPalletLockCommand) (*dto.PalletDTO, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	var updated *pallet.Pallet
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.palletRepo.GetByNumber(txCtx, cmd.Number)
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.Number)
		}

		// Re-read under the row lock so a concurrent release either
		// completes fully before or fully after this toggle.
		p, err = uc.palletRepo.GetByIDForUpdate(txCtx, p.ID())
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.Number)
		}

		changed, err := p.SetLock(cmd.Desired, cmd.ActorID, biztime.NowUTC())
		if err != nil {
			if err == pallet.ErrNotOpen {
				return errors.NewInvalidStateError("pallet is not open", cmd.Number)
			}
			return errors.NewValidationError(err.Error())
		}

		if !changed {
			uc.logger.Debugw("pallet lock already in desired state",
				"number", cmd.Number, "desired", cmd.Desired)
			updated = p
			return nil
		}

		if err := uc.palletRepo.Update(txCtx, p); err != nil {
			return err
		}

		updated = p
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to set pallet lock",
			"number", cmd.Number, "desired", cmd.Desired, "error", err)
		return nil, err
	}

	uc.logger.Infow("pallet lock updated",
		"number", cmd.Number, "desired", cmd.Desired, "actor_id", cmd.ActorID)

	snapshot, err := buildSnapshot(ctx, uc.ledger, uc.systemRepo, updated, biztime.NowUTC())
	if err != nil {
		return nil, err
	}

	return dto.ToPalletDTO(updated, snapshot), nil
}
