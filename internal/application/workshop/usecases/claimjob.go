package usecases

import (
	"context"
	"fmt"
	"time"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/domain/job"
	"fieldops/internal/domain/notification"
	"fieldops/internal/domain/technician"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/goroutine"
	"fieldops/internal/shared/logger"
)

type ClaimJobCommand struct {
	JobID        uint
	TechnicianID uint
	CompanyID    uint
	ActorID      uint
}

// ClaimJobUseCase is the single write path that moves a job from queued to
// being worked. All steps run in one transaction with row locks on the job
// and equipment-status rows, so two concurrent claims of the same job cannot
// both succeed and the technician capacity recount observes a consistent
// snapshot with the assignment.
type ClaimJobUseCase struct {
	jobRepo    job.Repository
	statusRepo workshop.EquipmentStatusRepository
	techRepo   technician.Repository
	capacity   *CapacityService
	machine    *StatusMachine
	txMgr      TransactionRunner
	dispatcher notification.Dispatcher
	logger     logger.Interface
}

func NewClaimJobUseCase(
	jobRepo job.Repository,
	statusRepo workshop.EquipmentStatusRepository,
	techRepo technician.Repository,
	capacity *CapacityService,
	machine *StatusMachine,
	txMgr TransactionRunner,
	dispatcher notification.Dispatcher,
	logger logger.Interface,
) *ClaimJobUseCase {
	return &ClaimJobUseCase{
		jobRepo:    jobRepo,
		statusRepo: statusRepo,
		techRepo:   techRepo,
		capacity:   capacity,
		machine:    machine,
		txMgr:      txMgr,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *ClaimJobUseCase) Execute(ctx context.Context, cmd ClaimJobCommand) (*dto.ClaimedJobDTO, error) {
	uc.logger.Infow("executing claim job use case",
		"job_id", cmd.JobID, "technician_id", cmd.TechnicianID, "company_id", cmd.CompanyID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid claim job command", "error", err)
		return nil, err
	}

	now := time.Now().UTC()

	var (
		claimed *dto.ClaimedJobDTO
		outcome *TransitionOutcome
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		j, err := uc.jobRepo.GetByIDForUpdate(txCtx, cmd.CompanyID, cmd.JobID)
		if err != nil {
			return err
		}
		if j == nil || !j.IsWorkshopJob() {
			return errors.NewNotFoundError("workshop job not found")
		}

		if j.IsAssigned() {
			return errors.NewAlreadyAssignedError("job is already assigned to a technician")
		}

		es, err := uc.statusRepo.GetByJobIDForUpdate(txCtx, cmd.JobID)
		if err != nil {
			return err
		}
		if es == nil {
			return errors.NewNotFoundError("equipment status not found")
		}
		if !es.CurrentStatus().IsReceived() {
			return errors.NewInvalidStateError(
				fmt.Sprintf("only received equipment is claimable, current status: %s", es.CurrentStatus()))
		}

		tech, err := uc.techRepo.GetByID(txCtx, cmd.TechnicianID)
		if err != nil {
			return err
		}
		if tech == nil || tech.CompanyID() != cmd.CompanyID {
			return errors.NewNotFoundError("technician not found")
		}
		if !tech.IsActive() {
			return errors.NewInvalidStateError("technician is not active")
		}

		// authoritative recount inside the transaction; the advisory read
		// endpoint may be stale by now
		check, err := uc.capacity.CheckTechnicianCapacity(txCtx, cmd.CompanyID, cmd.TechnicianID)
		if err != nil {
			return err
		}
		if !check.Allowed {
			return errors.NewCapacityExceededError(
				"technician has reached the maximum number of concurrent workshop jobs",
				check.Current, check.Max)
		}

		if err := j.Assign(cmd.TechnicianID, now); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}
		if err := uc.jobRepo.Update(txCtx, j); err != nil {
			return err
		}

		outcome, err = uc.machine.Transition(txCtx, cmd.CompanyID, cmd.JobID, vo.StatusInRepair, cmd.ActorID, "claimed by technician", now)
		if err != nil {
			return err
		}

		claimed = &dto.ClaimedJobDTO{
			JobID:          outcome.Job.ID(),
			JobNumber:      outcome.Job.Number(),
			JobStatus:      outcome.Job.Status().String(),
			RepairStatus:   outcome.Status.CurrentStatus().String(),
			TechnicianID:   tech.ID(),
			TechnicianName: tech.Name(),
			StartedAt:      now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("job claimed successfully",
		"job_id", cmd.JobID, "technician_id", cmd.TechnicianID)

	uc.notifyClaimed(outcome, claimed)

	return claimed, nil
}

func (uc *ClaimJobUseCase) validateCommand(cmd ClaimJobCommand) error {
	if cmd.JobID == 0 {
		return errors.NewValidationError("job ID is required")
	}
	if cmd.TechnicianID == 0 {
		return errors.NewValidationError("technician ID is required")
	}
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	return nil
}

func (uc *ClaimJobUseCase) notifyClaimed(outcome *TransitionOutcome, claimed *dto.ClaimedJobDTO) {
	if uc.dispatcher == nil || outcome == nil {
		return
	}

	event := notification.StatusChangedEvent{
		CompanyID:      outcome.Job.CompanyID(),
		JobID:          outcome.Job.ID(),
		JobNumber:      outcome.Job.Number(),
		TechnicianName: claimed.TechnicianName,
		FromStatus:     outcome.FromStatus.String(),
		ToStatus:       outcome.ToStatus.String(),
	}

	goroutine.SafeGo(uc.logger, "dispatch claim notification", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uc.dispatcher.DispatchStatusChanged(ctx, event); err != nil {
			uc.logger.Errorw("failed to dispatch claim notification", "error", err, "job_id", event.JobID)
		}
	})
}
