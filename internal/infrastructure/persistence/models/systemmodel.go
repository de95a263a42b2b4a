package models

type SystemModel struct {
	ID         uint   `gorm:"primaryKey"`
	Tag        string `gorm:"uniqueIndex;size:64;not null"`
	Issue      string `gorm:"type:text"`
	PPID       string `gorm:"column:ppid;size:64"`
	LocationID *uint  `gorm:"index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SystemModel) TableName() string {
	return "systems"
}
