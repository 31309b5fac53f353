package models

import (
	"time"

	"gorm.io/datatypes"

	"fieldops/internal/shared/constants"
)

// WorkshopSettingsModel holds per-company workshop limits. Absence of a row
// means unlimited capacity.
type WorkshopSettingsModel struct {
	ID                          uint  `gorm:"primaryKey"`
	CompanyID                   uint  `gorm:"uniqueIndex;not null"`
	MaxConcurrentJobs           int   `gorm:"not null;default:0"`
	MaxJobsPerTechnician        int   `gorm:"not null;default:0"`
	DefaultEstimatedRepairHours int   `gorm:"not null;default:0"`
	DefaultPickupDeliveryFee    int64 `gorm:"not null;default:0"`
	NotifyOnStatusChange        bool  `gorm:"not null;default:true"`
	NotificationTemplates       datatypes.JSON
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

func (WorkshopSettingsModel) TableName() string {
	return constants.TableWorkshopSettings
}
