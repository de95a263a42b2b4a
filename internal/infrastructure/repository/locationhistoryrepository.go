package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"depot/internal/domain/system"
	"depot/internal/infrastructure/persistence/mappers"
	"depot/internal/infrastructure/persistence/models"
	db "depot/internal/shared/db"
)

// LocationHistoryRepository persists the append-only location chain. Rows
// are only ever inserted or deleted; a delete is always the newest entry
// for its system.
type LocationHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.SystemMapper
}

func NewLocationHistoryRepository(db *gorm.DB) *LocationHistoryRepository {
	return &LocationHistoryRepository{
		db:     db,
		mapper: mappers.NewSystemMapper(),
	}
}

func (r *LocationHistoryRepository) Append(ctx context.Context, e *system.HistoryEntry) error {
	model := r.mapper.HistoryToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *LocationHistoryRepository) ListNewestFirst(
	ctx context.Context,
	systemID uint,
	limit int,
) ([]*system.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("system_id = ?", systemID).
		Order("changed_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var historyModels []models.LocationHistoryModel
	if err := query.Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*system.HistoryEntry, len(historyModels))
	for i, model := range historyModels {
		e, err := r.mapper.HistoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	return entries, nil
}

func (r *LocationHistoryRepository) CountBySystem(ctx context.Context, systemID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.LocationHistoryModel{}).
		Where("system_id = ?", systemID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}

	return count, nil
}

func (r *LocationHistoryRepository) DeleteEntry(ctx context.Context, entryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.LocationHistoryModel{}, entryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete history entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("history entry not found")
	}

	return nil
}
