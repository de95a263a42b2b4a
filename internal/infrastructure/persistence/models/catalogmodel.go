package models

type FactoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex;size:16;not null"`
	Name string `gorm:"size:128"`
}

func (FactoryModel) TableName() string {
	return "factories"
}

type PartNumberModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:64;not null"`
	Description string `gorm:"size:255"`
}

func (PartNumberModel) TableName() string {
	return "part_numbers"
}
