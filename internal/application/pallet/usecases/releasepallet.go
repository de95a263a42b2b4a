package usecases

import (
	"context"
	"strings"
	"time"

	"depot/internal/domain/pallet"
	"depot/internal/domain/system"
	"depot/internal/shared/biztime"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

type ReleasePalletCommand struct {
	Number    string
	DOANumber string
}

type ReleasePalletResult struct {
	PalletID      uint
	Number        string
	DOANumber     string
	ReleasedAt    time.Time
	MembersClosed int64
}

// ReleasePalletUseCase moves a pallet to its terminal state. The pallet row
// is locked before any check so concurrent releases and lock toggles
// serialize; one timestamp closes every open membership and stamps the
// pallet, all in a single transaction.
type ReleasePalletUseCase struct {
	palletRepo pallet.PalletRepository
	ledger     pallet.MembershipLedger
	systemRepo system.SystemRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewReleasePalletUseCase(
	palletRepo pallet.PalletRepository,
	ledger pallet.MembershipLedger,
	systemRepo system.SystemRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ReleasePalletUseCase {
	return &ReleasePalletUseCase{
		palletRepo: palletRepo,
		ledger:     ledger,
		systemRepo: systemRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *ReleasePalletUseCase) Execute(ctx context.Context, cmd ReleasePalletCommand) (*ReleasePalletResult, error) {
	uc.logger.Infow("executing release pallet use case", "number", cmd.Number)

	doaNumber := strings.TrimSpace(cmd.DOANumber)

	var result *ReleasePalletResult
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

		// Input validation comes after the state guard so releasing a
		// released pallet reports the state problem, whatever the DOA
		// looks like.
		if len(doaNumber) < pallet.MinDOANumberLength {
			return errors.NewBadRequestError("DOA number must be at least 5 characters")
		}

		releasedAt := biztime.NowUTC()

		memberships, err := uc.ledger.ActiveAt(txCtx, p.ID(), releasedAt)
		if err != nil {
			return err
		}
		if len(memberships) == 0 {
			return errors.NewInvalidStateError("pallet has no members", cmd.Number)
		}

		missing, err := uc.tagsMissingPPID(txCtx, memberships)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return errors.NewValidationErrorWithItems("members are missing a PPID", missing)
		}

		closed, err := uc.ledger.CloseAllForPallet(txCtx, p.ID(), releasedAt)
		if err != nil {
			return err
		}

		if err := p.Release(doaNumber, releasedAt); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		if err := uc.palletRepo.Update(txCtx, p); err != nil {
			return err
		}

		result = &ReleasePalletResult{
			PalletID:      p.ID(),
			Number:        p.Number(),
			DOANumber:     doaNumber,
			ReleasedAt:    releasedAt,
			MembersClosed: closed,
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to release pallet", "number", cmd.Number, "error", err)
		return nil, err
	}

	uc.logger.Infow("pallet released",
		"number", result.Number,
		"doa_number", result.DOANumber,
		"members_closed", result.MembersClosed)

	return result, nil
}

// tagsMissingPPID returns the tags of member units with an empty product
// identifier, in membership order, so the caller can name all of them at
// once.
func (uc *ReleasePalletUseCase) tagsMissingPPID(
	ctx context.Context,
	memberships []*pallet.Membership,
) ([]string, error) {
	systemIDs := make([]uint, len(memberships))
	for i, m := range memberships {
		systemIDs[i] = m.SystemID()
	}

	systems, err := uc.systemRepo.GetByIDs(ctx, systemIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*system.System, len(systems))
	for _, s := range systems {
		byID[s.ID()] = s
	}

	var missing []string
	for _, m := range memberships {
		s, ok := byID[m.SystemID()]
		if !ok || !s.HasPPID() {
			tag := "unknown"
			if ok {
				tag = s.Tag()
			}
			missing = append(missing, tag)
		}
	}

	return missing, nil
}
