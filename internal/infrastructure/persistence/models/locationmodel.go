package models

type LocationModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"uniqueIndex;size:64;not null"`
	Category string `gorm:"size:32;not null;index"`
}

func (LocationModel) TableName() string {
	return "locations"
}

// LocationHistoryModel persists the append-only location chain. Entries are
// never updated; undo-last deletes the newest row for a system.
type LocationHistoryModel struct {
	ID             uint   `gorm:"primaryKey"`
	SystemID       uint   `gorm:"not null;index:idx_history_system_changed"`
	FromLocationID *uint  ``
	ToLocationID   uint   `gorm:"not null"`
	ActorID        uint   `gorm:"not null;index"`
	Note           string `gorm:"type:text"`
	ChangedAt      int64  `gorm:"not null;index:idx_history_system_changed"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
}

func (LocationHistoryModel) TableName() string {
	return "location_history"
}
