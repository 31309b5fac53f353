package models

import (
	"time"

	"gorm.io/gorm"

	"fieldops/internal/shared/constants"
)

// JobModel is the persistence model for jobs. It is the anti-corruption
// layer between the domain entity and the database.
type JobModel struct {
	ID                       uint   `gorm:"primaryKey"`
	CompanyID                uint   `gorm:"not null;index:idx_company_status"`
	CustomerID               uint   `gorm:"not null;index"`
	EquipmentID              *uint  `gorm:"index"`
	EquipmentType            string `gorm:"size:100"`
	TechnicianID             *uint  `gorm:"index"`
	Number                   string `gorm:"uniqueIndex;size:50;not null"`
	Description              string `gorm:"type:text;not null"`
	Priority                 string `gorm:"size:20;not null;index"`
	Status                   string `gorm:"size:20;not null;index:idx_company_status"`
	LocationType             string `gorm:"size:20;not null;index"`
	ScheduledAt              *time.Time
	DueDate                  *time.Time
	StartedAt                *time.Time
	CompletedAt              *time.Time
	EstimatedDurationMinutes int `gorm:"not null;default:0"`
	ActualDurationMinutes    *int
	TotalCostCents           int64 `gorm:"not null;default:0"`
	DeliveryDate             *time.Time
	DeliveryTechnicianID     *uint
	PickupDeliveryFeeCents   int64     `gorm:"not null;default:0"`
	CreatedAt                time.Time `gorm:"index"`
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`

	// Note: no foreign key constraints or associations. Relationships are
	// managed by application business logic.
}

func (JobModel) TableName() string {
	return constants.TableJobs
}

// JobPartModel is a consumed inventory line item billed against a job.
type JobPartModel struct {
	ID              uint   `gorm:"primaryKey"`
	JobID           uint   `gorm:"not null;index"`
	InventoryItemID uint   `gorm:"not null;index"`
	Name            string `gorm:"size:200;not null"`
	Quantity        int    `gorm:"not null;default:1"`
	UnitPriceCents  int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (JobPartModel) TableName() string {
	return constants.TableJobParts
}
