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

type AddPalletMemberCommand struct {
	Number    string
	SystemTag string
}

type AddPalletMemberResult struct {
	MembershipID uint
	PalletID     uint
	SystemID     uint
	AddedAt      time.Time
}

type AddPalletMemberExecutor interface {
	Execute(ctx context.Context, cmd AddPalletMemberCommand) (*AddPalletMemberResult, error)
}

type AddPalletMemberUseCase struct {
	palletRepo   pallet.PalletRepository
	ledger       pallet.MembershipLedger
	systemRepo   system.SystemRepository
	locationRepo system.LocationRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewAddPalletMemberUseCase(
	palletRepo pallet.PalletRepository,
	ledger pallet.MembershipLedger,
	systemRepo system.SystemRepository,
	locationRepo system.LocationRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AddPalletMemberUseCase {
	return &AddPalletMemberUseCase{
		palletRepo:   palletRepo,
		ledger:       ledger,
		systemRepo:   systemRepo,
		locationRepo: locationRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *AddPalletMemberUseCase) Execute(ctx context.Context, cmd AddPalletMemberCommand) (*AddPalletMemberResult, error) {
	uc.logger.Infow("executing add pallet member use case",
		"number", cmd.Number, "tag", cmd.SystemTag)

	var result *AddPalletMemberResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		unit, err := uc.systemRepo.GetByTagForUpdate(txCtx, cmd.SystemTag)
		if err != nil {
			return errors.NewNotFoundError("system not found", cmd.SystemTag)
		}

		p, err := uc.palletRepo.GetByNumber(txCtx, cmd.Number)
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.Number)
		}

		// Re-read under the row lock so a release or delete committing
		// concurrently cannot slip a member onto a closed pallet.
		p, err = uc.palletRepo.GetByIDForUpdate(txCtx, p.ID())
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.Number)
		}

		if err := p.CanModifyMembers(); err != nil {
			return errors.NewInvalidStateError(err.Error(), cmd.Number)
		}

		// A unit holds at most one active membership across all pallets.
		existing, err := uc.ledger.FindActiveBySystem(txCtx, unit.ID())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewConflictError("system is already on a pallet", cmd.SystemTag)
		}

		locationID := unit.LocationID()
		if locationID == nil {
			return errors.NewInvalidStateError("system has no current location", cmd.SystemTag)
		}
		location, err := uc.locationRepo.GetByID(txCtx, *locationID)
		if err != nil {
			return err
		}
		if !location.IsRMA() {
			return errors.NewInvalidStateError("system is not in an RMA location", cmd.SystemTag)
		}

		addedAt := biztime.NowUTC()
		membership, err := uc.ledger.Open(txCtx, p.ID(), unit.ID(), addedAt)
		if err != nil {
			return err
		}

		result = &AddPalletMemberResult{
			MembershipID: membership.ID(),
			PalletID:     p.ID(),
			SystemID:     unit.ID(),
			AddedAt:      addedAt,
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to add pallet member",
			"number", cmd.Number, "tag", cmd.SystemTag, "error", err)
		return nil, err
	}

	uc.logger.Infow("pallet member added", "number", cmd.Number, "tag", cmd.SystemTag)
	return result, nil
}
