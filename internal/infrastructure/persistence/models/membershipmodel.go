package models

// PalletMembershipModel persists membership intervals. A NULL removed_at
// marks the open interval; at most one open row may exist per
// (pallet, system) pair, re-checked inside every opening transaction.
type PalletMembershipModel struct {
	ID        uint   `gorm:"primaryKey"`
	PalletID  uint   `gorm:"not null;index:idx_membership_pallet_system"`
	SystemID  uint   `gorm:"not null;index:idx_membership_pallet_system;index"`
	AddedAt   int64  `gorm:"not null;index"`
	RemovedAt *int64 `gorm:"index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (PalletMembershipModel) TableName() string {
	return "pallet_memberships"
}
