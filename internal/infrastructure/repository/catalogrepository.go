package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"depot/internal/domain/catalog"
	"depot/internal/infrastructure/persistence/models"
	db "depot/internal/shared/db"
)

type FactoryRepository struct {
	db *gorm.DB
}

func NewFactoryRepository(db *gorm.DB) *FactoryRepository {
	return &FactoryRepository{db: db}
}

func (r *FactoryRepository) GetByID(ctx context.Context, factoryID uint) (*catalog.Factory, error) {
	var model models.FactoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, factoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("factory not found")
		}
		return nil, fmt.Errorf("failed to find factory: %w", err)
	}

	return catalog.ReconstructFactory(model.ID, model.Code, model.Name)
}

func (r *FactoryRepository) GetByCode(ctx context.Context, code string) (*catalog.Factory, error) {
	var model models.FactoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("factory not found")
		}
		return nil, fmt.Errorf("failed to find factory: %w", err)
	}

	return catalog.ReconstructFactory(model.ID, model.Code, model.Name)
}

func (r *FactoryRepository) ListAll(ctx context.Context) ([]*catalog.Factory, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var factoryModels []models.FactoryModel
	if err := tx.Order("code ASC").Find(&factoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list factories: %w", err)
	}

	factories := make([]*catalog.Factory, len(factoryModels))
	for i, model := range factoryModels {
		f, err := catalog.ReconstructFactory(model.ID, model.Code, model.Name)
		if err != nil {
			return nil, err
		}
		factories[i] = f
	}

	return factories, nil
}

type PartNumberRepository struct {
	db *gorm.DB
}

func NewPartNumberRepository(db *gorm.DB) *PartNumberRepository {
	return &PartNumberRepository{db: db}
}

func (r *PartNumberRepository) GetByID(ctx context.Context, partNumberID uint) (*catalog.PartNumber, error) {
	var model models.PartNumberModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, partNumberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("part number not found")
		}
		return nil, fmt.Errorf("failed to find part number: %w", err)
	}

	return catalog.ReconstructPartNumber(model.ID, model.Name, model.Description)
}

func (r *PartNumberRepository) GetByName(ctx context.Context, name string) (*catalog.PartNumber, error) {
	var model models.PartNumberModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("part number not found")
		}
		return nil, fmt.Errorf("failed to find part number: %w", err)
	}

	return catalog.ReconstructPartNumber(model.ID, model.Name, model.Description)
}

func (r *PartNumberRepository) ListAll(ctx context.Context) ([]*catalog.PartNumber, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var partModels []models.PartNumberModel
	if err := tx.Order("name ASC").Find(&partModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list part numbers: %w", err)
	}

	parts := make([]*catalog.PartNumber, len(partModels))
	for i, model := range partModels {
		p, err := catalog.ReconstructPartNumber(model.ID, model.Name, model.Description)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}

	return parts, nil
}
