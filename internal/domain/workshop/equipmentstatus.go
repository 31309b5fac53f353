package workshop

import (
	"fmt"
	"time"

	vo "fieldops/internal/domain/workshop/valueobjects"
)

// RepairStatus is re-exported so callers holding an aggregate reference do
// not need a second import for the status type.
type RepairStatus = vo.RepairStatus

// EquipmentStatus is the authoritative repair state of one workshop job's
// equipment. Exactly one row exists per workshop job. Each status value has a
// timestamp set the first time that status is entered; the rework loop does
// not overwrite it.
type EquipmentStatus struct {
	id                uint
	jobID             uint
	companyID         uint
	currentStatus     vo.RepairStatus
	pendingIntakeAt   *time.Time
	inTransitAt       *time.Time
	receivedAt        *time.Time
	inRepairAt        *time.Time
	repairCompletedAt *time.Time
	readyForPickupAt  *time.Time
	outForDeliveryAt  *time.Time
	returnedAt        *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// NewEquipmentStatus creates the status row for a workshop job, entering the
// initial status immediately.
func NewEquipmentStatus(jobID, companyID uint, initial vo.RepairStatus, now time.Time) (*EquipmentStatus, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job ID is required")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if !initial.IsValid() {
		return nil, fmt.Errorf("invalid repair status: %s", initial)
	}

	es := &EquipmentStatus{
		jobID:         jobID,
		companyID:     companyID,
		currentStatus: initial,
		createdAt:     now,
		updatedAt:     now,
	}
	es.markEntered(initial, now)
	return es, nil
}

// ReconstructEquipmentStatusParams carries the persisted state.
type ReconstructEquipmentStatusParams struct {
	ID                uint
	JobID             uint
	CompanyID         uint
	CurrentStatus     vo.RepairStatus
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

func ReconstructEquipmentStatus(p ReconstructEquipmentStatusParams) (*EquipmentStatus, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("equipment status ID cannot be zero")
	}
	if p.JobID == 0 {
		return nil, fmt.Errorf("job ID is required")
	}
	if !p.CurrentStatus.IsValid() {
		return nil, fmt.Errorf("invalid repair status: %s", p.CurrentStatus)
	}

	return &EquipmentStatus{
		id:                p.ID,
		jobID:             p.JobID,
		companyID:         p.CompanyID,
		currentStatus:     p.CurrentStatus,
		pendingIntakeAt:   p.PendingIntakeAt,
		inTransitAt:       p.InTransitAt,
		receivedAt:        p.ReceivedAt,
		inRepairAt:        p.InRepairAt,
		repairCompletedAt: p.RepairCompletedAt,
		readyForPickupAt:  p.ReadyForPickupAt,
		outForDeliveryAt:  p.OutForDeliveryAt,
		returnedAt:        p.ReturnedAt,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (es *EquipmentStatus) ID() uint                       { return es.id }
func (es *EquipmentStatus) JobID() uint                    { return es.jobID }
func (es *EquipmentStatus) CompanyID() uint                { return es.companyID }
func (es *EquipmentStatus) CurrentStatus() vo.RepairStatus { return es.currentStatus }
func (es *EquipmentStatus) PendingIntakeAt() *time.Time    { return es.pendingIntakeAt }
func (es *EquipmentStatus) InTransitAt() *time.Time        { return es.inTransitAt }
func (es *EquipmentStatus) ReceivedAt() *time.Time         { return es.receivedAt }
func (es *EquipmentStatus) InRepairAt() *time.Time         { return es.inRepairAt }
func (es *EquipmentStatus) RepairCompletedAt() *time.Time  { return es.repairCompletedAt }
func (es *EquipmentStatus) ReadyForPickupAt() *time.Time   { return es.readyForPickupAt }
func (es *EquipmentStatus) OutForDeliveryAt() *time.Time   { return es.outForDeliveryAt }
func (es *EquipmentStatus) ReturnedAt() *time.Time         { return es.returnedAt }
func (es *EquipmentStatus) CreatedAt() time.Time           { return es.createdAt }
func (es *EquipmentStatus) UpdatedAt() time.Time           { return es.updatedAt }

func (es *EquipmentStatus) SetID(id uint) error {
	if es.id != 0 {
		return fmt.Errorf("equipment status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment status ID cannot be zero")
	}
	es.id = id
	return nil
}

// EnteredAt returns the first-entry timestamp for a status, or nil if the
// status was never entered.
func (es *EquipmentStatus) EnteredAt(status vo.RepairStatus) *time.Time {
	switch status {
	case vo.StatusPendingIntake:
		return es.pendingIntakeAt
	case vo.StatusInTransit:
		return es.inTransitAt
	case vo.StatusReceived:
		return es.receivedAt
	case vo.StatusInRepair:
		return es.inRepairAt
	case vo.StatusRepairCompleted:
		return es.repairCompletedAt
	case vo.StatusReadyForPickup:
		return es.readyForPickupAt
	case vo.StatusOutForDelivery:
		return es.outForDeliveryAt
	case vo.StatusReturned:
		return es.returnedAt
	}
	return nil
}

// markEntered stamps the per-status timestamp on first entry. An explicit
// switch keeps the status-to-column mapping statically checkable.
func (es *EquipmentStatus) markEntered(status vo.RepairStatus, now time.Time) {
	switch status {
	case vo.StatusPendingIntake:
		if es.pendingIntakeAt == nil {
			es.pendingIntakeAt = &now
		}
	case vo.StatusInTransit:
		if es.inTransitAt == nil {
			es.inTransitAt = &now
		}
	case vo.StatusReceived:
		if es.receivedAt == nil {
			es.receivedAt = &now
		}
	case vo.StatusInRepair:
		if es.inRepairAt == nil {
			es.inRepairAt = &now
		}
	case vo.StatusRepairCompleted:
		if es.repairCompletedAt == nil {
			es.repairCompletedAt = &now
		}
	case vo.StatusReadyForPickup:
		if es.readyForPickupAt == nil {
			es.readyForPickupAt = &now
		}
	case vo.StatusOutForDelivery:
		if es.outForDeliveryAt == nil {
			es.outForDeliveryAt = &now
		}
	case vo.StatusReturned:
		if es.returnedAt == nil {
			es.returnedAt = &now
		}
	}
}

// TransitionTo moves along one edge of the status machine.
func (es *EquipmentStatus) TransitionTo(newStatus vo.RepairStatus, now time.Time) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid repair status: %s", newStatus)
	}
	if !es.currentStatus.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", es.currentStatus, newStatus)
	}

	es.currentStatus = newStatus
	es.markEntered(newStatus, now)
	es.updatedAt = now
	return nil
}
