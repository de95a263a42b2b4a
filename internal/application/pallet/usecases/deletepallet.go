package usecases

import (
	"context"

	"depot/internal/domain/pallet"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

type DeletePalletCommand struct {
	Number string
}

type DeletePalletUseCase struct {
	palletRepo pallet.PalletRepository
	ledger     pallet.MembershipLedger
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeletePalletUseCase(
	palletRepo pallet.PalletRepository,
	ledger pallet.MembershipLedger,
	txManager TransactionManager,
	logger logger.Interface,
) *DeletePalletUseCase {
	return &DeletePalletUseCase{
		palletRepo: palletRepo,
		ledger:     ledger,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeletePalletUseCase) Execute(ctx context.Context, cmd DeletePalletCommand) error {
	uc.logger.Infow("executing delete pallet use case", "number", cmd.Number)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.palletRepo.GetByNumber(txCtx, cmd.Number)
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.Number)
		}

		p, err = uc.palletRepo.GetByIDForUpdate(txCtx, p.ID())
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.Number)
		}

		if !p.Status().IsOpen() {
			return errors.NewInvalidStateError("pallet is not open", cmd.Number)
		}

		count, err := uc.ledger.CountActive(txCtx, p.ID())
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.NewConflictError("pallet has open memberships", cmd.Number)
		}

		return uc.palletRepo.Delete(txCtx, p.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete pallet", "number", cmd.Number, "error", err)
		return err
	}

	uc.logger.Infow("pallet deleted", "number", cmd.Number)
	return nil
}
