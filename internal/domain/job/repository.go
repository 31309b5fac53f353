package job

import (
	"context"

	vo "fieldops/internal/domain/job/valueobjects"
)

// Filter narrows job list queries. Nil pointer fields are ignored.
type Filter struct {
	Status       *vo.JobStatus
	Priority     *vo.Priority
	LocationType *vo.LocationType
	CustomerID   *uint
	TechnicianID *uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

// Part is a consumed inventory line item billed against a job.
type Part struct {
	ID              uint
	JobID           uint
	InventoryItemID uint
	Name            string
	Quantity        int
	UnitPriceCents  int64
}

// TotalCents returns the line total.
func (p Part) TotalCents() int64 {
	return int64(p.Quantity) * p.UnitPriceCents
}

// Repository persists jobs. Implementations must honor the ambient
// transaction carried in ctx (see shared/db).
type Repository interface {
	Save(ctx context.Context, j *Job) error
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, companyID, jobID uint) error
	GetByID(ctx context.Context, companyID, jobID uint) (*Job, error)
	// GetByIDForUpdate loads the job with a row lock so concurrent claims of
	// the same job serialize on the database.
	GetByIDForUpdate(ctx context.Context, companyID, jobID uint) (*Job, error)
	List(ctx context.Context, companyID uint, filter Filter) ([]*Job, int64, error)

	// CountActiveWorkshopJobs counts workshop jobs that are not cancelled and
	// whose equipment has not yet been returned. Feeds workshop-wide
	// admission control.
	CountActiveWorkshopJobs(ctx context.Context, companyID uint) (int, error)
	// CountTechnicianActiveJobs counts workshop jobs assigned to the
	// technician with equipment status in_repair or repair_completed and job
	// status neither completed nor cancelled. Feeds per-technician admission
	// control.
	CountTechnicianActiveJobs(ctx context.Context, companyID, technicianID uint) (int, error)
}

// PartRepository reads consumed parts for invoicing.
type PartRepository interface {
	ListByJob(ctx context.Context, jobID uint) ([]Part, error)
}
