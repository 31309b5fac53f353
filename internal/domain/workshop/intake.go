package workshop

import (
	"fmt"
	"time"
)

// EquipmentIntake captures the arrival of equipment at the depot. One row per
// workshop job, created once; only the note fields may change afterwards.
type EquipmentIntake struct {
	id                    uint
	jobID                 uint
	companyID             uint
	reportedIssue         string
	conditionNotes        string
	accessories           []string
	customerSignatureRef  string
	estimatedRepairHours  int
	estimatedCompletionAt *time.Time
	createdAt             time.Time
	updatedAt             time.Time
}

func NewEquipmentIntake(
	jobID uint,
	companyID uint,
	reportedIssue string,
	conditionNotes string,
	accessories []string,
	customerSignatureRef string,
	estimatedRepairHours int,
	now time.Time,
) (*EquipmentIntake, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job ID is required")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(reportedIssue) == 0 {
		return nil, fmt.Errorf("reported issue is required")
	}
	if estimatedRepairHours <= 0 {
		return nil, fmt.Errorf("estimated repair hours must be positive")
	}

	if accessories == nil {
		accessories = []string{}
	}

	completion := now.Add(time.Duration(estimatedRepairHours) * time.Hour)

	return &EquipmentIntake{
		jobID:                 jobID,
		companyID:             companyID,
		reportedIssue:         reportedIssue,
		conditionNotes:        conditionNotes,
		accessories:           accessories,
		customerSignatureRef:  customerSignatureRef,
		estimatedRepairHours:  estimatedRepairHours,
		estimatedCompletionAt: &completion,
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

// ReconstructIntakeParams carries the persisted state.
type ReconstructIntakeParams struct {
	ID                    uint
	JobID                 uint
	CompanyID             uint
	ReportedIssue         string
	ConditionNotes        string
	Accessories           []string
	CustomerSignatureRef  string
	EstimatedRepairHours  int
	EstimatedCompletionAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func ReconstructIntake(p ReconstructIntakeParams) (*EquipmentIntake, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("intake ID cannot be zero")
	}
	if p.JobID == 0 {
		return nil, fmt.Errorf("job ID is required")
	}

	accessories := p.Accessories
	if accessories == nil {
		accessories = []string{}
	}

	return &EquipmentIntake{
		id:                    p.ID,
		jobID:                 p.JobID,
		companyID:             p.CompanyID,
		reportedIssue:         p.ReportedIssue,
		conditionNotes:        p.ConditionNotes,
		accessories:           accessories,
		customerSignatureRef:  p.CustomerSignatureRef,
		estimatedRepairHours:  p.EstimatedRepairHours,
		estimatedCompletionAt: p.EstimatedCompletionAt,
		createdAt:             p.CreatedAt,
		updatedAt:             p.UpdatedAt,
	}, nil
}

func (i *EquipmentIntake) ID() uint                          { return i.id }
func (i *EquipmentIntake) JobID() uint                       { return i.jobID }
func (i *EquipmentIntake) CompanyID() uint                   { return i.companyID }
func (i *EquipmentIntake) ReportedIssue() string             { return i.reportedIssue }
func (i *EquipmentIntake) ConditionNotes() string            { return i.conditionNotes }
func (i *EquipmentIntake) CustomerSignatureRef() string      { return i.customerSignatureRef }
func (i *EquipmentIntake) EstimatedRepairHours() int         { return i.estimatedRepairHours }
func (i *EquipmentIntake) EstimatedCompletionAt() *time.Time { return i.estimatedCompletionAt }
func (i *EquipmentIntake) CreatedAt() time.Time              { return i.createdAt }
func (i *EquipmentIntake) UpdatedAt() time.Time              { return i.updatedAt }

func (i *EquipmentIntake) Accessories() []string {
	out := make([]string, len(i.accessories))
	copy(out, i.accessories)
	return out
}

func (i *EquipmentIntake) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("intake ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("intake ID cannot be zero")
	}
	i.id = id
	return nil
}

// UpdateConditionNotes is the only mutation allowed after creation.
func (i *EquipmentIntake) UpdateConditionNotes(notes string) {
	i.conditionNotes = notes
	i.updatedAt = time.Now()
}
