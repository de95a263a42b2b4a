package usecases

import (
	"context"

	"depot/internal/domain/system"
	"depot/internal/shared/biztime"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

type UndoLocationHistoryCommand struct {
	SystemTag string
	ActorID   uint
}

type UndoLocationHistoryResult struct {
	SystemID      uint
	NewLocationID uint
}

// UndoLocationHistoryUseCase deletes a unit's newest history entry and
// rewinds its location pointer. The first entry anchors the chain and is
// never undoable. Only the entry's own actor may undo it, except entries
// owned by the reserved placeholder actor, which anyone may retract.
type UndoLocationHistoryUseCase struct {
	systemRepo     system.SystemRepository
	historyRepo    system.HistoryRepository
	txManager      TransactionManager
	deletedActorID uint
	logger         logger.Interface
}

func NewUndoLocationHistoryUseCase(
	systemRepo system.SystemRepository,
	historyRepo system.HistoryRepository,
	txManager TransactionManager,
	deletedActorID uint,
	logger logger.Interface,
) *UndoLocationHistoryUseCase {
	return &UndoLocationHistoryUseCase{
		systemRepo:     systemRepo,
		historyRepo:    historyRepo,
		txManager:      txManager,
		deletedActorID: deletedActorID,
		logger:         logger,
	}
}

func (uc *UndoLocationHistoryUseCase) Execute(ctx context.Context, cmd UndoLocationHistoryCommand) (*UndoLocationHistoryResult, error) {
	uc.logger.Infow("executing undo location history use case",
		"tag", cmd.SystemTag, "actor_id", cmd.ActorID)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	var result *UndoLocationHistoryResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		unit, err := uc.systemRepo.GetByTagForUpdate(txCtx, cmd.SystemTag)
		if err != nil {
			return errors.NewNotFoundError("system not found", cmd.SystemTag)
		}

		// Two newest entries: the one being removed and the one the
		// location rewinds to.
		entries, err := uc.historyRepo.ListNewestFirst(txCtx, unit.ID(), 2)
		if err != nil {
			return err
		}
		if len(entries) < 2 {
			return errors.NewInvalidStateError("first history entry cannot be undone", cmd.SystemTag)
		}

		newest := entries[0]
		if newest.ActorID() != cmd.ActorID && newest.ActorID() != uc.deletedActorID {
			return errors.NewForbiddenError("entry belongs to another actor")
		}

		if err := uc.historyRepo.DeleteEntry(txCtx, newest.ID()); err != nil {
			return err
		}

		newLocationID := entries[1].ToLocationID()
		unit.MoveTo(&newLocationID, biztime.NowUTC())
		if err := uc.systemRepo.Update(txCtx, unit); err != nil {
			return err
		}

		result = &UndoLocationHistoryResult{
			SystemID:      unit.ID(),
			NewLocationID: newLocationID,
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to undo location history",
			"tag", cmd.SystemTag, "error", err)
		return nil, err
	}

	uc.logger.Infow("location history entry undone",
		"tag", cmd.SystemTag, "new_location_id", result.NewLocationID)

	return result, nil
}
