// Package sequence implements pallet number allocation on a row-locked
// counter table, one row per (factory, part number, business day).
package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"depot/internal/domain/pallet"
	"depot/internal/infrastructure/persistence/models"
	"depot/internal/shared/biztime"
	db "depot/internal/shared/db"
	apperrors "depot/internal/shared/errors"
)

// maxAllocateRetries bounds the insert race between two allocators seeing
// no counter row for a fresh day key.
const maxAllocateRetries = 3

// PalletNumberAllocator hands out gap-free pallet numbers. The counter row
// is read under SELECT ... FOR UPDATE so two concurrent creations for the
// same (factory, part, day) serialize instead of reusing a sequence value.
type PalletNumberAllocator struct {
	db *gorm.DB
}

func NewPalletNumberAllocator(db *gorm.DB) *PalletNumberAllocator {
	return &PalletNumberAllocator{db: db}
}

var _ pallet.NumberGenerator = (*PalletNumberAllocator)(nil)

func (a *PalletNumberAllocator) Generate(
	ctx context.Context,
	factoryID uint,
	factoryCode string,
	partNumberID uint,
	partNumberName string,
) (string, error) {
	dayKey := biztime.DayKey(biztime.NowUTC())

	seq, err := a.nextSeq(ctx, factoryID, partNumberID, dayKey)
	if err != nil {
		return "", err
	}

	return pallet.FormatNumber(factoryCode, partNumberName, dayKey, seq), nil
}

// nextSeq claims the next sequence value for the key. Must run inside the
// transaction that also inserts the pallet, so an aborted creation does not
// burn a number.
func (a *PalletNumberAllocator) nextSeq(
	ctx context.Context,
	factoryID, partNumberID uint,
	dayKey string,
) (int, error) {
	tx := db.GetTxFromContext(ctx, a.db)
	return allocateSeq(maxAllocateRetries, func() (int, error) {
		return claimSeq(tx, factoryID, partNumberID, dayKey)
	})
}

// allocateSeq retries claim while it loses the first-insert race for a
// fresh key, surfacing a duplicate-key error each time. Any other error
// ends the allocation immediately.
func allocateSeq(retries int, claim func() (int, error)) (int, error) {
	for attempt := 0; attempt < retries; attempt++ {
		seq, err := claim()
		if err == nil {
			return seq, nil
		}
		if !apperrors.IsDuplicateError(err) {
			return 0, err
		}
	}
	return 0, fmt.Errorf("failed to allocate pallet sequence after %d attempts", retries)
}

// claimSeq performs one allocation attempt: advance the existing counter
// row under a row lock, or insert the first row for the key. A concurrent
// allocator winning the insert surfaces as a duplicate-key error on the
// unique index; the caller retries against the winner's row.
func claimSeq(tx *gorm.DB, factoryID, partNumberID uint, dayKey string) (int, error) {
	var row models.PalletSequenceModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("factory_id = ? AND part_number_id = ? AND day_key = ?",
			factoryID, partNumberID, dayKey).
		First(&row).Error

	if err == nil {
		seq := row.NextSeq
		if err := tx.
			Model(&models.PalletSequenceModel{}).
			Where("id = ?", row.ID).
			Update("next_seq", gorm.Expr("next_seq + 1")).Error; err != nil {
			return 0, fmt.Errorf("failed to advance pallet sequence: %w", err)
		}
		return seq, nil
	}

	if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to read pallet sequence: %w", err)
	}

	row = models.PalletSequenceModel{
		FactoryID:    factoryID,
		PartNumberID: partNumberID,
		DayKey:       dayKey,
		NextSeq:      2,
	}
	if err := tx.Create(&row).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to create pallet sequence: %w", err)
	}
	return 1, nil
}
