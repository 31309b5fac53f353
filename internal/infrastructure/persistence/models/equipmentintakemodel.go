package models

import (
	"time"

	"gorm.io/datatypes"

	"fieldops/internal/shared/constants"
)

// EquipmentIntakeModel records the equipment's condition at arrival. One row
// per workshop job.
type EquipmentIntakeModel struct {
	ID                    uint   `gorm:"primaryKey"`
	JobID                 uint   `gorm:"uniqueIndex;not null"`
	CompanyID             uint   `gorm:"not null;index"`
	ReportedIssue         string `gorm:"type:text;not null"`
	ConditionNotes        string `gorm:"type:text"`
	Accessories           datatypes.JSON
	CustomerSignatureRef  string `gorm:"size:255"`
	EstimatedRepairHours  int    `gorm:"not null;default:0"`
	EstimatedCompletionAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (EquipmentIntakeModel) TableName() string {
	return constants.TableEquipmentIntakes
}
