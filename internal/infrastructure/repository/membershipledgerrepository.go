package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"depot/internal/domain/pallet"
	"depot/internal/infrastructure/persistence/mappers"
	"depot/internal/infrastructure/persistence/models"
	db "depot/internal/shared/db"
)

type MembershipLedgerRepository struct {
	db     *gorm.DB
	mapper mappers.PalletMapper
}

func NewMembershipLedgerRepository(db *gorm.DB) *MembershipLedgerRepository {
	return &MembershipLedgerRepository{
		db:     db,
		mapper: mappers.NewPalletMapper(),
	}
}

func (r *MembershipLedgerRepository) Open(
	ctx context.Context,
	palletID, systemID uint,
	at time.Time,
) (*pallet.Membership, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// Re-check inside the transaction so two concurrent adds of the same
	// system cannot both open an interval.
	var count int64
	if err := tx.
		Model(&models.PalletMembershipModel{}).
		Where("pallet_id = ? AND system_id = ? AND removed_at IS NULL", palletID, systemID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check open membership: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("membership already open")
	}

	model := &models.PalletMembershipModel{
		PalletID: palletID,
		SystemID: systemID,
		AddedAt:  at.UnixMilli(),
	}
	if err := tx.Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to open membership: %w", err)
	}

	return r.mapper.MembershipToDomain(model)
}

func (r *MembershipLedgerRepository) Close(
	ctx context.Context,
	palletID, systemID uint,
	at time.Time,
) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PalletMembershipModel{}).
		Where("pallet_id = ? AND system_id = ? AND removed_at IS NULL", palletID, systemID).
		Update("removed_at", at.UnixMilli())

	if result.Error != nil {
		return fmt.Errorf("failed to close membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no open membership")
	}

	return nil
}

// CloseAllForPallet stamps every open interval on the pallet with the same
// removal instant. Release depends on the shared timestamp.
func (r *MembershipLedgerRepository) CloseAllForPallet(
	ctx context.Context,
	palletID uint,
	at time.Time,
) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PalletMembershipModel{}).
		Where("pallet_id = ? AND removed_at IS NULL", palletID).
		Update("removed_at", at.UnixMilli())

	if result.Error != nil {
		return 0, fmt.Errorf("failed to close memberships: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *MembershipLedgerRepository) ActiveAt(
	ctx context.Context,
	palletID uint,
	asOf time.Time,
) ([]*pallet.Membership, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	ms := asOf.UnixMilli()

	var membershipModels []models.PalletMembershipModel
	if err := tx.
		Where("pallet_id = ? AND added_at <= ? AND (removed_at IS NULL OR removed_at >= ?)",
			palletID, ms, ms).
		Order("added_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}

	memberships := make([]*pallet.Membership, len(membershipModels))
	for i, model := range membershipModels {
		m, err := r.mapper.MembershipToDomain(&model)
		if err != nil {
			return nil, err
		}
		memberships[i] = m
	}

	return memberships, nil
}

func (r *MembershipLedgerRepository) FindActiveByPalletAndSystem(
	ctx context.Context,
	palletID, systemID uint,
) (*pallet.Membership, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PalletMembershipModel
	err := tx.
		Where("pallet_id = ? AND system_id = ? AND removed_at IS NULL", palletID, systemID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open membership: %w", err)
	}

	return r.mapper.MembershipToDomain(&model)
}

func (r *MembershipLedgerRepository) FindActiveBySystem(
	ctx context.Context,
	systemID uint,
) (*pallet.Membership, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PalletMembershipModel
	err := tx.
		Where("system_id = ? AND removed_at IS NULL", systemID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open membership: %w", err)
	}

	return r.mapper.MembershipToDomain(&model)
}

func (r *MembershipLedgerRepository) CountActive(
	ctx context.Context,
	palletID uint,
) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.PalletMembershipModel{}).
		Where("pallet_id = ? AND removed_at IS NULL", palletID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}

	return count, nil
}
