package migration

import (
	"depot/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ActorModel{},
		&models.FactoryModel{},
		&models.PartNumberModel{},
		&models.LocationModel{},
		&models.SystemModel{},
		&models.LocationHistoryModel{},
		&models.PalletModel{},
		&models.PalletMembershipModel{},
		&models.PalletSequenceModel{},
	}
}
