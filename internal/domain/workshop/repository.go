package workshop

import (
	"context"

	jobvo "fieldops/internal/domain/job/valueobjects"
)

// EquipmentStatusRepository persists the single tracking row per workshop job.
type EquipmentStatusRepository interface {
	Save(ctx context.Context, status *EquipmentStatus) error
	Update(ctx context.Context, status *EquipmentStatus) error
	GetByJobID(ctx context.Context, jobID uint) (*EquipmentStatus, error)
	// GetByJobIDForUpdate acquires a row lock when called inside a
	// transaction so concurrent claims serialize on the same job.
	GetByJobIDForUpdate(ctx context.Context, jobID uint) (*EquipmentStatus, error)
	ListByStatuses(ctx context.Context, companyID uint, statuses []RepairStatus) ([]*EquipmentStatus, error)
}

// QueueFilter narrows the repair queue read. Nil pointer fields are ignored.
type QueueFilter struct {
	EquipmentType string
	CustomerID    *uint
	Priority      *jobvo.Priority
}

// QueueRepository reads the raw repair queue: workshop jobs with equipment
// status received or in_repair, joined with their intake. Ranking happens in
// the domain, not in SQL.
type QueueRepository interface {
	ListQueue(ctx context.Context, companyID uint, filter QueueFilter) ([]QueueEntry, error)
}

// StatusHistoryRepository stores the append-only transition log.
type StatusHistoryRepository interface {
	Append(ctx context.Context, entry *StatusHistoryEntry) error
	ListByJobID(ctx context.Context, jobID uint) ([]*StatusHistoryEntry, error)
}

// IntakeRepository persists equipment intake records.
type IntakeRepository interface {
	Save(ctx context.Context, intake *EquipmentIntake) error
	Update(ctx context.Context, intake *EquipmentIntake) error
	GetByJobID(ctx context.Context, jobID uint) (*EquipmentIntake, error)
}
