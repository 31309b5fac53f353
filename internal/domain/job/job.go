package job

import (
	"fmt"
	"time"

	vo "fieldops/internal/domain/job/valueobjects"
)

// Job is a unit of field-service work. Workshop jobs additionally own an
// equipment intake and an equipment repair status; their overall status is
// derived from the repair status rather than set directly.
type Job struct {
	id                       uint
	companyID                uint
	customerID               uint
	equipmentID              *uint
	equipmentType            string
	technicianID             *uint
	number                   string
	description              string
	priority                 vo.Priority
	status                   vo.JobStatus
	locationType             vo.LocationType
	scheduledAt              *time.Time
	dueDate                  *time.Time
	startedAt                *time.Time
	completedAt              *time.Time
	estimatedDurationMinutes int
	actualDurationMinutes    *int
	totalCostCents           int64
	deliveryDate             *time.Time
	deliveryTechnicianID     *uint
	pickupDeliveryFeeCents   int64
	createdAt                time.Time
	updatedAt                time.Time
}

func NewJob(
	companyID uint,
	customerID uint,
	description string,
	priority vo.Priority,
	locationType vo.LocationType,
) (*Job, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !locationType.IsValid() {
		return nil, fmt.Errorf("invalid location type")
	}

	now := time.Now()
	return &Job{
		companyID:    companyID,
		customerID:   customerID,
		description:  description,
		priority:     priority,
		status:       vo.StatusPending,
		locationType: locationType,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructParams carries the persisted state of a job.
type ReconstructParams struct {
	ID                       uint
	CompanyID                uint
	CustomerID               uint
	EquipmentID              *uint
	EquipmentType            string
	TechnicianID             *uint
	Number                   string
	Description              string
	Priority                 vo.Priority
	Status                   vo.JobStatus
	LocationType             vo.LocationType
	ScheduledAt              *time.Time
	DueDate                  *time.Time
	StartedAt                *time.Time
	CompletedAt              *time.Time
	EstimatedDurationMinutes int
	ActualDurationMinutes    *int
	TotalCostCents           int64
	DeliveryDate             *time.Time
	DeliveryTechnicianID     *uint
	PickupDeliveryFeeCents   int64
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// ReconstructJob rebuilds a job from persistence. Invariants are re-checked
// so a corrupt row fails loudly instead of flowing through the system.
func ReconstructJob(p ReconstructParams) (*Job, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("job ID cannot be zero")
	}
	if p.CompanyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(p.Number) == 0 {
		return nil, fmt.Errorf("job number is required")
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid job status")
	}
	if !p.LocationType.IsValid() {
		return nil, fmt.Errorf("invalid location type")
	}

	return &Job{
		id:                       p.ID,
		companyID:                p.CompanyID,
		customerID:               p.CustomerID,
		equipmentID:              p.EquipmentID,
		equipmentType:            p.EquipmentType,
		technicianID:             p.TechnicianID,
		number:                   p.Number,
		description:              p.Description,
		priority:                 p.Priority,
		status:                   p.Status,
		locationType:             p.LocationType,
		scheduledAt:              p.ScheduledAt,
		dueDate:                  p.DueDate,
		startedAt:                p.StartedAt,
		completedAt:              p.CompletedAt,
		estimatedDurationMinutes: p.EstimatedDurationMinutes,
		actualDurationMinutes:    p.ActualDurationMinutes,
		totalCostCents:           p.TotalCostCents,
		deliveryDate:             p.DeliveryDate,
		deliveryTechnicianID:     p.DeliveryTechnicianID,
		pickupDeliveryFeeCents:   p.PickupDeliveryFeeCents,
		createdAt:                p.CreatedAt,
		updatedAt:                p.UpdatedAt,
	}, nil
}

func (j *Job) ID() uint                      { return j.id }
func (j *Job) CompanyID() uint               { return j.companyID }
func (j *Job) CustomerID() uint              { return j.customerID }
func (j *Job) EquipmentID() *uint            { return j.equipmentID }
func (j *Job) EquipmentType() string         { return j.equipmentType }
func (j *Job) TechnicianID() *uint           { return j.technicianID }
func (j *Job) Number() string                { return j.number }
func (j *Job) Description() string           { return j.description }
func (j *Job) Priority() vo.Priority         { return j.priority }
func (j *Job) Status() vo.JobStatus          { return j.status }
func (j *Job) LocationType() vo.LocationType { return j.locationType }
func (j *Job) ScheduledAt() *time.Time       { return j.scheduledAt }
func (j *Job) DueDate() *time.Time           { return j.dueDate }
func (j *Job) StartedAt() *time.Time         { return j.startedAt }
func (j *Job) CompletedAt() *time.Time       { return j.completedAt }
func (j *Job) EstimatedDurationMinutes() int { return j.estimatedDurationMinutes }
func (j *Job) ActualDurationMinutes() *int   { return j.actualDurationMinutes }
func (j *Job) TotalCostCents() int64         { return j.totalCostCents }
func (j *Job) DeliveryDate() *time.Time      { return j.deliveryDate }
func (j *Job) DeliveryTechnicianID() *uint   { return j.deliveryTechnicianID }
func (j *Job) PickupDeliveryFeeCents() int64 { return j.pickupDeliveryFeeCents }
func (j *Job) CreatedAt() time.Time          { return j.createdAt }
func (j *Job) UpdatedAt() time.Time          { return j.updatedAt }

func (j *Job) SetID(id uint) error {
	if j.id != 0 {
		return fmt.Errorf("job ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("job ID cannot be zero")
	}
	j.id = id
	return nil
}

func (j *Job) SetNumber(number string) error {
	if len(j.number) > 0 {
		return fmt.Errorf("job number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("job number cannot be empty")
	}
	j.number = number
	return nil
}

func (j *Job) SetEquipment(equipmentID uint, equipmentType string) {
	j.equipmentID = &equipmentID
	j.equipmentType = equipmentType
	j.updatedAt = time.Now()
}

func (j *Job) IsWorkshopJob() bool {
	return j.locationType.IsWorkshop()
}

func (j *Job) IsAssigned() bool {
	return j.technicianID != nil
}

// Assign gives the job to a technician and starts work. Only the claim
// coordinator calls this, inside its transaction.
func (j *Job) Assign(technicianID uint, now time.Time) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	if j.technicianID != nil {
		return fmt.Errorf("job is already assigned to technician %d", *j.technicianID)
	}

	j.technicianID = &technicianID
	j.status = vo.StatusInProgress
	j.startedAt = &now
	j.updatedAt = now
	return nil
}

// Unassign clears the technician, used when repair work is sent back to the
// queue (rework). Keeps assignment and repair status in lock-step.
func (j *Job) Unassign() {
	j.technicianID = nil
	j.startedAt = nil
	j.updatedAt = time.Now()
}

// ApplyDerivedStatus sets the overall status derived from the equipment
// repair status. Completion is stamped exactly once.
func (j *Job) ApplyDerivedStatus(status vo.JobStatus, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid job status: %s", status)
	}

	j.status = status
	j.updatedAt = now

	if status.IsCompleted() && j.completedAt == nil {
		j.completedAt = &now
		if j.startedAt != nil {
			minutes := int(now.Sub(*j.startedAt).Minutes())
			j.actualDurationMinutes = &minutes
		}
	}
	return nil
}

// SetStatus sets the overall status directly. Valid for on-site jobs only;
// workshop jobs derive their status from equipment state.
func (j *Job) SetStatus(status vo.JobStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid job status: %s", status)
	}
	if j.IsWorkshopJob() {
		return fmt.Errorf("workshop job status is derived from equipment status")
	}
	j.status = status
	j.updatedAt = time.Now()
	return nil
}

func (j *Job) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description cannot be empty")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	j.description = description
	j.updatedAt = time.Now()
	return nil
}

func (j *Job) SetPriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	j.priority = priority
	j.updatedAt = time.Now()
	return nil
}

func (j *Job) SetTotalCost(cents int64) {
	j.totalCostCents = cents
	j.updatedAt = time.Now()
}

func (j *Job) SetSchedule(scheduledAt, dueDate *time.Time, estimatedDurationMinutes int) {
	j.scheduledAt = scheduledAt
	j.dueDate = dueDate
	if estimatedDurationMinutes > 0 {
		j.estimatedDurationMinutes = estimatedDurationMinutes
	}
	j.updatedAt = time.Now()
}

func (j *Job) SetDelivery(date *time.Time, technicianID *uint, feeCents int64) {
	j.deliveryDate = date
	j.deliveryTechnicianID = technicianID
	j.pickupDeliveryFeeCents = feeCents
	j.updatedAt = time.Now()
}

// CanBeDeleted reports whether explicit deletion is allowed. Completed jobs
// are immutable billing records.
func (j *Job) CanBeDeleted() bool {
	return !j.status.IsCompleted()
}
