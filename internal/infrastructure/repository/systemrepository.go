package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"depot/internal/domain/system"
	"depot/internal/infrastructure/persistence/mappers"
	"depot/internal/infrastructure/persistence/models"
	db "depot/internal/shared/db"
)

type SystemRepository struct {
	db     *gorm.DB
	mapper mappers.SystemMapper
}

func NewSystemRepository(db *gorm.DB) *SystemRepository {
	return &SystemRepository{
		db:     db,
		mapper: mappers.NewSystemMapper(),
	}
}

func (r *SystemRepository) Save(ctx context.Context, s *system.System) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save system: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SystemRepository) Update(ctx context.Context, s *system.System) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SystemModel{}).
		Where("id = ?", model.ID).
		Select("Issue", "PPID", "LocationID", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update system: %w", result.Error)
	}

	return nil
}

func (r *SystemRepository) GetByID(ctx context.Context, systemID uint) (*system.System, error) {
	var model models.SystemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, systemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("system not found")
		}
		return nil, fmt.Errorf("failed to find system: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SystemRepository) GetByIDs(ctx context.Context, systemIDs []uint) ([]*system.System, error) {
	if len(systemIDs) == 0 {
		return nil, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var systemModels []models.SystemModel
	if err := tx.Where("id IN ?", systemIDs).Find(&systemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find systems: %w", err)
	}

	systems := make([]*system.System, len(systemModels))
	for i, model := range systemModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		systems[i] = s
	}

	return systems, nil
}

func (r *SystemRepository) GetByTag(ctx context.Context, tag string) (*system.System, error) {
	var model models.SystemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("tag = ?", tag).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("system not found")
		}
		return nil, fmt.Errorf("failed to find system: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByTagForUpdate reads the system under SELECT ... FOR UPDATE so a
// membership change and a location append cannot interleave on the same
// system.
func (r *SystemRepository) GetByTagForUpdate(ctx context.Context, tag string) (*system.System, error) {
	var model models.SystemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tag = ?", tag).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("system not found")
		}
		return nil, fmt.Errorf("failed to lock system row: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
