package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"depot/internal/domain/pallet"
	"depot/internal/infrastructure/persistence/mappers"
	"depot/internal/infrastructure/persistence/models"
	db "depot/internal/shared/db"
	apperrors "depot/internal/shared/errors"
)

// allowedPalletFilterFields is the whitelist of columns the predicate-tree
// filter and ORDER BY may reference, to prevent SQL injection.
var allowedPalletFilterFields = map[string]bool{
	"id":             true,
	"number":         true,
	"status":         true,
	"factory_id":     true,
	"part_number_id": true,
	"doa_number":     true,
	"released_at":    true,
	"created_at":     true,
}

type PalletRepository struct {
	db     *gorm.DB
	mapper mappers.PalletMapper
}

func NewPalletRepository(db *gorm.DB) *PalletRepository {
	return &PalletRepository{
		db:     db,
		mapper: mappers.NewPalletMapper(),
	}
}

func (r *PalletRepository) Save(ctx context.Context, p *pallet.Pallet) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save pallet: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PalletRepository) Update(ctx context.Context, p *pallet.Pallet) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writes of the nullable lock and release columns so
	// clearing a lock actually nulls them.
	result := tx.
		Model(&models.PalletModel{}).
		Where("id = ?", model.ID).
		Select("Status", "LockedAt", "LockedBy", "DOANumber", "ReleasedAt", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update pallet: %w", result.Error)
	}

	return nil
}

func (r *PalletRepository) Delete(ctx context.Context, palletID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PalletModel{}, palletID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete pallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("pallet not found")
	}
	return nil
}

func (r *PalletRepository) GetByID(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
	var model models.PalletModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, palletID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("pallet not found")
		}
		return nil, fmt.Errorf("failed to find pallet: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByIDForUpdate reads the pallet under SELECT ... FOR UPDATE. Must run
// inside a transaction; release and lock toggles serialize on this row.
func (r *PalletRepository) GetByIDForUpdate(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
	var model models.PalletModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, palletID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("pallet not found")
		}
		return nil, fmt.Errorf("failed to lock pallet row: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PalletRepository) GetByNumber(ctx context.Context, number string) (*pallet.Pallet, error) {
	var model models.PalletModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("pallet not found")
		}
		return nil, fmt.Errorf("failed to find pallet: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PalletRepository) List(
	ctx context.Context,
	filter pallet.PalletFilter,
) ([]*pallet.Pallet, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PalletModel{})

	if filter.Expr != nil {
		sql, args, err := filter.Expr.Compile(allowedPalletFilterFields)
		if err != nil {
			// A filter that fails to compile is caller input, not a
			// store failure.
			return nil, 0, apperrors.NewBadRequestError("invalid pallet filter", err.Error())
		}
		query = query.Where(sql, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pallets: %w", err)
	}

	query = query.Order(filter.OrderClause(allowedPalletFilterFields, "created_at DESC"))

	if filter.Paged() {
		query = query.Limit(filter.Limit()).Offset(filter.Offset())
	}

	var palletModels []models.PalletModel
	if err := query.Find(&palletModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pallets: %w", err)
	}

	pallets := make([]*pallet.Pallet, len(palletModels))
	for i, model := range palletModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		pallets[i] = p
	}

	return pallets, total, nil
}
