package usecases

import (
	"context"

	"depot/internal/application/system/dto"
	"depot/internal/domain/system"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

type GetSystemHistoryQuery struct {
	SystemTag string
	Limit     int
}

// GetSystemHistoryResult carries the requested entries plus the total
// chain length, so a limited read still reports how much history exists.
type GetSystemHistoryResult struct {
	Entries []*dto.HistoryEntryDTO
	Total   int64
}

type GetSystemHistoryUseCase struct {
	systemRepo  system.SystemRepository
	historyRepo system.HistoryRepository
	logger      logger.Interface
}

func NewGetSystemHistoryUseCase(
	systemRepo system.SystemRepository,
	historyRepo system.HistoryRepository,
	logger logger.Interface,
) *GetSystemHistoryUseCase {
	return &GetSystemHistoryUseCase{
		systemRepo:  systemRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *GetSystemHistoryUseCase) Execute(ctx context.Context, query GetSystemHistoryQuery) (*GetSystemHistoryResult, error) {
	unit, err := uc.systemRepo.GetByTag(ctx, query.SystemTag)
	if err != nil {
		return nil, errors.NewNotFoundError("system not found", query.SystemTag)
	}

	entries, err := uc.historyRepo.ListNewestFirst(ctx, unit.ID(), query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list location history",
			"tag", query.SystemTag, "error", err)
		return nil, err
	}

	total, err := uc.historyRepo.CountBySystem(ctx, unit.ID())
	if err != nil {
		uc.logger.Errorw("failed to count location history",
			"tag", query.SystemTag, "error", err)
		return nil, err
	}

	return &GetSystemHistoryResult{
		Entries: dto.ToHistoryEntryDTOs(entries),
		Total:   total,
	}, nil
}
