package usecases

import (
	"context"
	"time"

	"depot/internal/domain/system"
	"depot/internal/shared/biztime"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

type AppendLocationHistoryCommand struct {
	SystemTag    string
	ToLocationID uint
	ActorID      uint
	Note         string
}

type AppendLocationHistoryResult struct {
	EntryID        uint
	SystemID       uint
	FromLocationID *uint
	ToLocationID   uint
	ChangedAt      time.Time
}

// AppendLocationHistoryUseCase writes a location transition. The entry and
// the unit's current-location pointer change in one transaction, so the
// pointer always equals the newest entry's to-location.
type AppendLocationHistoryUseCase struct {
	systemRepo   system.SystemRepository
	historyRepo  system.HistoryRepository
	locationRepo system.LocationRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewAppendLocationHistoryUseCase(
	systemRepo system.SystemRepository,
	historyRepo system.HistoryRepository,
	locationRepo system.LocationRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AppendLocationHistoryUseCase {
	return &AppendLocationHistoryUseCase{
		systemRepo:   systemRepo,
		historyRepo:  historyRepo,
		locationRepo: locationRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *AppendLocationHistoryUseCase) Execute(ctx context.Context, cmd AppendLocationHistoryCommand) (*AppendLocationHistoryResult, error) {
	uc.logger.Infow("executing append location history use case",
		"tag", cmd.SystemTag, "to_location_id", cmd.ToLocationID, "actor_id", cmd.ActorID)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	if _, err := uc.locationRepo.GetByID(ctx, cmd.ToLocationID); err != nil {
		return nil, errors.NewNotFoundError("location not found")
	}

	var result *AppendLocationHistoryResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Row lock keeps the append serialized with pallet-move
		// eligibility checks reading the unit's location.
		unit, err := uc.systemRepo.GetByTagForUpdate(txCtx, cmd.SystemTag)
		if err != nil {
			return errors.NewNotFoundError("system not found", cmd.SystemTag)
		}

		changedAt := biztime.NowUTC()
		fromLocationID := unit.LocationID()

		entry, err := system.NewHistoryEntry(
			unit.ID(), fromLocationID, cmd.ToLocationID, cmd.ActorID, cmd.Note, changedAt)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}

		toLocationID := cmd.ToLocationID
		unit.MoveTo(&toLocationID, changedAt)
		if err := uc.systemRepo.Update(txCtx, unit); err != nil {
			return err
		}

		result = &AppendLocationHistoryResult{
			EntryID:        entry.ID(),
			SystemID:       unit.ID(),
			FromLocationID: fromLocationID,
			ToLocationID:   cmd.ToLocationID,
			ChangedAt:      changedAt,
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to append location history",
			"tag", cmd.SystemTag, "error", err)
		return nil, err
	}

	uc.logger.Infow("location history appended",
		"tag", cmd.SystemTag, "entry_id", result.EntryID, "to_location_id", cmd.ToLocationID)

	return result, nil
}
