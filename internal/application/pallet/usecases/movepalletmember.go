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

type MovePalletMemberCommand struct {
	SystemTag  string
	FromNumber string
	ToNumber   string
}

type MovePalletMemberResult struct {
	SystemID     uint
	FromPalletID uint
	ToPalletID   uint
	MovedAt      time.Time
}

// MovePalletMemberUseCase moves a unit between two open pallets. The
// ordered eligibility checks and the close+open mutation share one
// transaction; any failure leaves the unit a member of exactly its original
// pallet.
type MovePalletMemberUseCase struct {
	palletRepo   pallet.PalletRepository
	ledger       pallet.MembershipLedger
	systemRepo   system.SystemRepository
	locationRepo system.LocationRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewMovePalletMemberUseCase(
	palletRepo pallet.PalletRepository,
	ledger pallet.MembershipLedger,
	systemRepo system.SystemRepository,
	locationRepo system.LocationRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *MovePalletMemberUseCase {
	return &MovePalletMemberUseCase{
		palletRepo:   palletRepo,
		ledger:       ledger,
		systemRepo:   systemRepo,
		locationRepo: locationRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *MovePalletMemberUseCase) Execute(ctx context.Context, cmd MovePalletMemberCommand) (*MovePalletMemberResult, error) {
	uc.logger.Infow("executing move pallet member use case",
		"tag", cmd.SystemTag, "from", cmd.FromNumber, "to", cmd.ToNumber)

	var result *MovePalletMemberResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// The row lock on the unit serializes this check sequence with
		// concurrent location appends.
		unit, err := uc.systemRepo.GetByTagForUpdate(txCtx, cmd.SystemTag)
		if err != nil {
			return errors.NewNotFoundError("system not found", cmd.SystemTag)
		}

		from, err := uc.palletRepo.GetByNumber(txCtx, cmd.FromNumber)
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.FromNumber)
		}
		to, err := uc.palletRepo.GetByNumber(txCtx, cmd.ToNumber)
		if err != nil {
			return errors.NewNotFoundError("pallet not found", cmd.ToNumber)
		}

		if from.ID() == to.ID() {
			return errors.NewBadRequestError("source and destination pallets are identical")
		}

		// Re-read both under row locks so a concurrent release cannot
		// commit between the status checks and the interval writes.
		// Locking in id order keeps two opposing moves from deadlocking.
		from, to, err = uc.lockPalletPair(txCtx, from, to)
		if err != nil {
			return err
		}

		if err := from.CanModifyMembers(); err != nil {
			return errors.NewInvalidStateError(err.Error(), from.Number())
		}
		if err := to.CanModifyMembers(); err != nil {
			return errors.NewInvalidStateError(err.Error(), to.Number())
		}

		if !from.SameDestination(to) {
			return errors.NewBadRequestError("pallets differ in factory or part number")
		}

		membership, err := uc.ledger.FindActiveByPalletAndSystem(txCtx, from.ID(), unit.ID())
		if err != nil {
			return err
		}
		if membership == nil {
			return errors.NewInvalidStateError("system is not a member of the source pallet", cmd.SystemTag)
		}

		if err := uc.checkRMAEligible(txCtx, unit); err != nil {
			return err
		}

		movedAt := biztime.NowUTC()
		if err := uc.ledger.Close(txCtx, from.ID(), unit.ID(), movedAt); err != nil {
			return err
		}
		if _, err := uc.ledger.Open(txCtx, to.ID(), unit.ID(), movedAt); err != nil {
			return err
		}

		result = &MovePalletMemberResult{
			SystemID:     unit.ID(),
			FromPalletID: from.ID(),
			ToPalletID:   to.ID(),
			MovedAt:      movedAt,
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to move pallet member",
			"tag", cmd.SystemTag, "from", cmd.FromNumber, "to", cmd.ToNumber, "error", err)
		return nil, err
	}

	uc.logger.Infow("pallet member moved",
		"tag", cmd.SystemTag, "from", cmd.FromNumber, "to", cmd.ToNumber)

	return result, nil
}

// lockPalletPair re-reads both pallets under SELECT ... FOR UPDATE,
// ascending by id, and returns them in (from, to) order.
func (uc *MovePalletMemberUseCase) lockPalletPair(
	ctx context.Context,
	from, to *pallet.Pallet,
) (*pallet.Pallet, *pallet.Pallet, error) {
	first, second := from, to
	if second.ID() < first.ID() {
		first, second = second, first
	}

	locked := make(map[uint]*pallet.Pallet, 2)
	for _, p := range []*pallet.Pallet{first, second} {
		lp, err := uc.palletRepo.GetByIDForUpdate(ctx, p.ID())
		if err != nil {
			return nil, nil, errors.NewNotFoundError("pallet not found", p.Number())
		}
		locked[lp.ID()] = lp
	}

	return locked[from.ID()], locked[to.ID()], nil
}

func (uc *MovePalletMemberUseCase) checkRMAEligible(ctx context.Context, unit *system.System) error {
	locationID := unit.LocationID()
	if locationID == nil {
		return errors.NewInvalidStateError("system has no current location", unit.Tag())
	}

	location, err := uc.locationRepo.GetByID(ctx, *locationID)
	if err != nil {
		return err
	}
	if !location.IsRMA() {
		return errors.NewInvalidStateError("system is not in an RMA location", unit.Tag())
	}

	return nil
}
