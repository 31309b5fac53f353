package usecases

import (
	"context"
	"time"

	"fieldops/internal/domain/job"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

// StatusMachine advances a job's equipment status by one edge. It assumes the
// caller already opened a transaction; every write it performs resolves the
// transactional handle from ctx, so the equipment status update, the history
// row, and the derived job status change commit or roll back together.
type StatusMachine struct {
	jobRepo     job.Repository
	statusRepo  workshop.EquipmentStatusRepository
	historyRepo workshop.StatusHistoryRepository
	logger      logger.Interface
}

func NewStatusMachine(
	jobRepo job.Repository,
	statusRepo workshop.EquipmentStatusRepository,
	historyRepo workshop.StatusHistoryRepository,
	logger logger.Interface,
) *StatusMachine {
	return &StatusMachine{
		jobRepo:     jobRepo,
		statusRepo:  statusRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// TransitionOutcome reports the state after a successful transition.
type TransitionOutcome struct {
	Job        *job.Job
	Status     *workshop.EquipmentStatus
	FromStatus vo.RepairStatus
	ToStatus   vo.RepairStatus
}

// Transition moves the equipment to newStatus, appends exactly one history
// row, and re-derives the job's overall status. The rework edge
// in_repair -> received also clears the technician assignment so assignment
// stays in lock-step with repair progress.
func (m *StatusMachine) Transition(
	ctx context.Context,
	companyID, jobID uint,
	newStatus vo.RepairStatus,
	actorID uint,
	notes string,
	now time.Time,
) (*TransitionOutcome, error) {
	es, err := m.statusRepo.GetByJobIDForUpdate(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if es == nil || es.CompanyID() != companyID {
		return nil, errors.NewNotFoundError("equipment status not found")
	}

	j, err := m.jobRepo.GetByIDForUpdate(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, errors.NewNotFoundError("job not found")
	}

	from := es.CurrentStatus()
	if !from.CanTransitionTo(newStatus) {
		return nil, errors.NewInvalidTransitionError(from.String(), newStatus.String())
	}

	if err := es.TransitionTo(newStatus, now); err != nil {
		return nil, errors.NewInvalidTransitionError(from.String(), newStatus.String())
	}

	if from.IsInRepair() && newStatus.IsReceived() {
		j.Unassign()
	}

	if err := j.ApplyDerivedStatus(vo.DeriveJobStatus(newStatus), now); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := m.statusRepo.Update(ctx, es); err != nil {
		m.logger.Errorw("failed to update equipment status", "error", err, "job_id", jobID)
		return nil, err
	}

	if err := m.jobRepo.Update(ctx, j); err != nil {
		m.logger.Errorw("failed to update job status", "error", err, "job_id", jobID)
		return nil, err
	}

	entry, err := workshop.NewStatusHistoryEntry(es.ID(), jobID, from, newStatus, actorID, notes, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := m.historyRepo.Append(ctx, entry); err != nil {
		m.logger.Errorw("failed to append status history", "error", err, "job_id", jobID)
		return nil, err
	}

	return &TransitionOutcome{
		Job:        j,
		Status:     es,
		FromStatus: from,
		ToStatus:   newStatus,
	}, nil
}
