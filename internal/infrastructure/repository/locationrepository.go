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

type LocationRepository struct {
	db     *gorm.DB
	mapper mappers.SystemMapper
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{
		db:     db,
		mapper: mappers.NewSystemMapper(),
	}
}

func (r *LocationRepository) GetByID(ctx context.Context, locationID uint) (*system.Location, error) {
	var model models.LocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, locationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("location not found")
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	return r.mapper.LocationToDomain(&model)
}

func (r *LocationRepository) ListAll(ctx context.Context) ([]*system.Location, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var locationModels []models.LocationModel
	if err := tx.Order("name ASC").Find(&locationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]*system.Location, len(locationModels))
	for i, model := range locationModels {
		l, err := r.mapper.LocationToDomain(&model)
		if err != nil {
			return nil, err
		}
		locations[i] = l
	}

	return locations, nil
}
