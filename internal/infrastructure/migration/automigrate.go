package migration

import (
	"fieldops/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.JobModel{},
		&models.JobPartModel{},
		&models.EquipmentStatusModel{},
		&models.EquipmentStatusHistoryModel{},
		&models.EquipmentIntakeModel{},
		&models.WorkshopSettingsModel{},
		&models.TechnicianModel{},
		&models.CustomerModel{},
	}
}
