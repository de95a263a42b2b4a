package models

// PalletSequenceModel is the per-(factory, part number, day) counter behind
// pallet number allocation. Rows are read under SELECT ... FOR UPDATE; the
// composite unique index turns concurrent first-inserts into duplicate-key
// errors the allocator retries on.
type PalletSequenceModel struct {
	ID           uint   `gorm:"primaryKey"`
	FactoryID    uint   `gorm:"not null;uniqueIndex:idx_pallet_seq_key"`
	PartNumberID uint   `gorm:"not null;uniqueIndex:idx_pallet_seq_key"`
	DayKey       string `gorm:"size:6;not null;uniqueIndex:idx_pallet_seq_key"`
	NextSeq      int    `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PalletSequenceModel) TableName() string {
	return "pallet_number_sequences"
}
