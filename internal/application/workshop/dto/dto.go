// Package dto carries workshop read models across the application boundary.
package dto

import "time"

// QueueItemDTO is one entry of the prioritized repair queue.
type QueueItemDTO struct {
	JobID         uint       `json:"job_id"`
	JobNumber     string     `json:"job_number"`
	CustomerID    uint       `json:"customer_id"`
	CustomerName  string     `json:"customer_name,omitempty"`
	EquipmentType string     `json:"equipment_type,omitempty"`
	Priority      string     `json:"priority"`
	RepairStatus  string     `json:"repair_status"`
	TechnicianID  *uint      `json:"technician_id,omitempty"`
	IntakeAt      time.Time  `json:"intake_at"`
	EstimatedAt   *time.Time `json:"estimated_completion_at,omitempty"`
	DaysWaiting   int        `json:"days_waiting"`
	IsOverdue     bool       `json:"is_overdue"`
	Score         int        `json:"score"`
}

// TechnicianUtilizationDTO reports one technician's workshop load.
type TechnicianUtilizationDTO struct {
	TechnicianID       uint    `json:"technician_id"`
	Name               string  `json:"name"`
	ActiveJobs         int     `json:"active_jobs"`
	MaxJobs            int     `json:"max_jobs"`
	UtilizationPercent float64 `json:"utilization_percent"`
	RemainingCapacity  int     `json:"remaining_capacity"`
	NearCapacity       bool    `json:"near_capacity"`
}

// CapacitySnapshotDTO is the advisory capacity dashboard view.
type CapacitySnapshotDTO struct {
	ActiveJobs         int                        `json:"active_jobs"`
	MaxConcurrentJobs  int                        `json:"max_concurrent_jobs"`
	Unlimited          bool                       `json:"unlimited"`
	UtilizationPercent float64                    `json:"utilization_percent"`
	NearCapacity       bool                       `json:"near_capacity"`
	Technicians        []TechnicianUtilizationDTO `json:"technicians"`
	GeneratedAt        time.Time                  `json:"generated_at"`
}

// StatusHistoryEntryDTO is one row of the transition log, newest first.
type StatusHistoryEntryDTO struct {
	ID         uint      `json:"id"`
	JobID      uint      `json:"job_id"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	ActorID    uint      `json:"actor_id"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// EquipmentStatusDTO is the current tracking row for a workshop job.
type EquipmentStatusDTO struct {
	JobID             uint       `json:"job_id"`
	CurrentStatus     string     `json:"current_status"`
	ValidTransitions  []string   `json:"valid_transitions"`
	PendingIntakeAt   *time.Time `json:"pending_intake_at,omitempty"`
	InTransitAt       *time.Time `json:"in_transit_at,omitempty"`
	ReceivedAt        *time.Time `json:"received_at,omitempty"`
	InRepairAt        *time.Time `json:"in_repair_at,omitempty"`
	RepairCompletedAt *time.Time `json:"repair_completed_at,omitempty"`
	ReadyForPickupAt  *time.Time `json:"ready_for_pickup_at,omitempty"`
	OutForDeliveryAt  *time.Time `json:"out_for_delivery_at,omitempty"`
	ReturnedAt        *time.Time `json:"returned_at,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ClaimedJobDTO is the joined view returned by a successful claim.
type ClaimedJobDTO struct {
	JobID          uint      `json:"job_id"`
	JobNumber      string    `json:"job_number"`
	JobStatus      string    `json:"job_status"`
	RepairStatus   string    `json:"repair_status"`
	TechnicianID   uint      `json:"technician_id"`
	TechnicianName string    `json:"technician_name"`
	StartedAt      time.Time `json:"started_at"`
}

// InvoiceReadinessDTO reports whether a job can be invoiced.
type InvoiceReadinessDTO struct {
	JobID  uint   `json:"job_id"`
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}

// JobTotalDTO is the persisted invoice total breakdown.
type JobTotalDTO struct {
	JobID            uint   `json:"job_id"`
	PartsTotalCents  int64  `json:"parts_total_cents"`
	DeliveryFeeCents int64  `json:"delivery_fee_cents"`
	TotalCents       int64  `json:"total_cents"`
	TotalFormatted   string `json:"total_formatted"`
}

// IntakeDTO reports the recorded intake and resulting equipment status.
type IntakeDTO struct {
	IntakeID              uint       `json:"intake_id"`
	JobID                 uint       `json:"job_id"`
	RepairStatus          string     `json:"repair_status"`
	EstimatedRepairHours  int        `json:"estimated_repair_hours"`
	EstimatedCompletionAt *time.Time `json:"estimated_completion_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}
