package dto

import (
	"time"

	"fieldops/internal/domain/job"
)

// JobDTO is the full job representation returned by get/create/update.
type JobDTO struct {
	ID                       uint       `json:"id"`
	Number                   string     `json:"number"`
	CompanyID                uint       `json:"company_id"`
	CustomerID               uint       `json:"customer_id"`
	EquipmentID              *uint      `json:"equipment_id,omitempty"`
	EquipmentType            string     `json:"equipment_type,omitempty"`
	TechnicianID             *uint      `json:"technician_id,omitempty"`
	Description              string     `json:"description"`
	Priority                 string     `json:"priority"`
	Status                   string     `json:"status"`
	LocationType             string     `json:"location_type"`
	ScheduledAt              *time.Time `json:"scheduled_at,omitempty"`
	DueDate                  *time.Time `json:"due_date,omitempty"`
	StartedAt                *time.Time `json:"started_at,omitempty"`
	CompletedAt              *time.Time `json:"completed_at,omitempty"`
	EstimatedDurationMinutes int        `json:"estimated_duration_minutes,omitempty"`
	TotalCostCents           int64      `json:"total_cost_cents"`
	PickupDeliveryFeeCents   int64      `json:"pickup_delivery_fee_cents,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

// JobListItemDTO is the trimmed shape for list responses.
type JobListItemDTO struct {
	ID           uint       `json:"id"`
	Number       string     `json:"number"`
	CustomerID   uint       `json:"customer_id"`
	TechnicianID *uint      `json:"technician_id,omitempty"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	LocationType string     `json:"location_type"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToJobDTO(j *job.Job) JobDTO {
	return JobDTO{
		ID:                       j.ID(),
		Number:                   j.Number(),
		CompanyID:                j.CompanyID(),
		CustomerID:               j.CustomerID(),
		EquipmentID:              j.EquipmentID(),
		EquipmentType:            j.EquipmentType(),
		TechnicianID:             j.TechnicianID(),
		Description:              j.Description(),
		Priority:                 j.Priority().String(),
		Status:                   j.Status().String(),
		LocationType:             j.LocationType().String(),
		ScheduledAt:              j.ScheduledAt(),
		DueDate:                  j.DueDate(),
		StartedAt:                j.StartedAt(),
		CompletedAt:              j.CompletedAt(),
		EstimatedDurationMinutes: j.EstimatedDurationMinutes(),
		TotalCostCents:           j.TotalCostCents(),
		PickupDeliveryFeeCents:   j.PickupDeliveryFeeCents(),
		CreatedAt:                j.CreatedAt(),
		UpdatedAt:                j.UpdatedAt(),
	}
}

func ToJobListItemDTO(j *job.Job) JobListItemDTO {
	return JobListItemDTO{
		ID:           j.ID(),
		Number:       j.Number(),
		CustomerID:   j.CustomerID(),
		TechnicianID: j.TechnicianID(),
		Description:  j.Description(),
		Priority:     j.Priority().String(),
		Status:       j.Status().String(),
		LocationType: j.LocationType().String(),
		ScheduledAt:  j.ScheduledAt(),
		DueDate:      j.DueDate(),
		CreatedAt:    j.CreatedAt(),
	}
}
