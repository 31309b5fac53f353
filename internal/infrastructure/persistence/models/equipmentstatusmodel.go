package models

import (
	"time"

	"fieldops/internal/shared/constants"
)

// EquipmentStatusModel tracks where a workshop job's equipment sits in the
// repair lifecycle. One row per job; per-status columns record the first
// entry into each state and survive rework cycles.
type EquipmentStatusModel struct {
	ID                uint   `gorm:"primaryKey"`
	JobID             uint   `gorm:"uniqueIndex;not null"`
	CompanyID         uint   `gorm:"not null;index:idx_company_current"`
	CurrentStatus     string `gorm:"size:30;not null;index:idx_company_current"`
	PendingIntakeAt   *time.Time
	InTransitAt       *time.Time
	ReceivedAt        *time.Time
	InRepairAt        *time.Time
	RepairCompletedAt *time.Time
	ReadyForPickupAt  *time.Time
	OutForDeliveryAt  *time.Time
	ReturnedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (EquipmentStatusModel) TableName() string {
	return constants.TableEquipmentStatuses
}

// EquipmentStatusHistoryModel is the append-only transition log. FromStatus
// is empty on the row written when the status record is created.
type EquipmentStatusHistoryModel struct {
	ID                uint      `gorm:"primaryKey"`
	EquipmentStatusID uint      `gorm:"not null;index"`
	JobID             uint      `gorm:"not null;index"`
	FromStatus        string    `gorm:"size:30"`
	ToStatus          string    `gorm:"size:30;not null"`
	ActorID           uint      `gorm:"not null"`
	Notes             string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"index"`
}

func (EquipmentStatusHistoryModel) TableName() string {
	return constants.TableEquipmentStatusHistory
}
