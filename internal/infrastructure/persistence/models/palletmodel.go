package models

// PalletModel persists pallets. The lock is stored as the nullable pair
// (locked_at, locked_by); "locked" is derived from both being set, so the
// all-or-nothing invariant cannot drift.
type PalletModel struct {
	ID           uint    `gorm:"primaryKey"`
	Number       string  `gorm:"uniqueIndex;size:64;not null"`
	FactoryID    uint    `gorm:"not null;index"`
	PartNumberID uint    `gorm:"not null;index"`
	Status       string  `gorm:"size:16;not null;index"`
	LockedAt     *int64  ``
	LockedBy     *uint   ``
	DOANumber    *string `gorm:"column:doa_number;size:64"`
	ReleasedAt   *int64  `gorm:"index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (PalletModel) TableName() string {
	return "pallets"
}
