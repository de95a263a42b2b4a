package usecases

import (
	"context"
	"time"

	"depot/internal/domain/pallet"
	"depot/internal/domain/system"
	"depot/internal/shared/biztime"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

type RemovePalletMemberCommand struct {
	Number    string
	SystemTag string
}

type RemovePalletMemberResult struct {
	PalletID  uint
	SystemID  uint
	RemovedAt time.Time
}

type RemovePalletMemberExecutor interface {
	Execute(ctx context.Context, cmd RemovePalletMemberCommand) (*RemovePalletMemberResult, error)
}

type RemovePalletMemberUseCase struct {
	palletRepo pallet.PalletRepository
	ledger     pallet.MembershipLedger
	systemRepo system.SystemRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewRemovePalletMemberUseCase(
	palletRepo pallet.PalletRepository,
	ledger pallet.MembershipLedger,
	systemRepo system.SystemRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *RemovePalletMemberUseCase {
	return &RemovePalletMemberUseCase{
		palletRepo: palletRepo,
		ledger:     ledger,
		systemRepo: systemRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *RemovePalletMemberUseCase) Execute(ctx context.Context, cmd RemovePalletMemberCommand) (*RemovePalletMemberResult, error) {
	uc.logger.Infow("executing remove pallet member use case",
		"number", cmd.Number, "tag", cmd.SystemTag)

	var result *RemovePalletMemberResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		unit, err := uc.systemRepo.GetByTag(txCtx, cmd.SystemTag)
		if err != nil {
			return errors.NewNotFoundError("system not found", cmd.SystemTag)
		}

		p, err := uc.palletRepo.GetByNumber(txCtx, cmd.Number)
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.Number)
		}

		// Row lock before the guards, same as release and move, so the
		// close below cannot race a committing release.
		p, err = uc.palletRepo.GetByIDForUpdate(txCtx, p.ID())
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.Number)
		}

		if err := p.CanModifyMembers(); err != nil {
			return errors.NewInvalidStateError(err.Error(), cmd.Number)
		}

		membership, err := uc.ledger.FindActiveByPalletAndSystem(txCtx, p.ID(), unit.ID())
		if err != nil {
			return err
		}
		if membership == nil {
			return errors.NewInvalidStateError("system is not a member of the pallet", cmd.SystemTag)
		}

		removedAt := biztime.NowUTC()
		if err := uc.ledger.Close(txCtx, p.ID(), unit.ID(), removedAt); err != nil {
			return err
		}

		result = &RemovePalletMemberResult{
			PalletID:  p.ID(),
			SystemID:  unit.ID(),
			RemovedAt: removedAt,
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to remove pallet member",
			"number", cmd.Number, "tag", cmd.SystemTag, "error", err)
		return nil, err
	}

	uc.logger.Infow("pallet member removed", "number", cmd.Number, "tag", cmd.SystemTag)
	return result, nil
}
