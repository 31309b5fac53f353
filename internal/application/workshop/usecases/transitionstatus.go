package usecases

import (
	"context"
	"time"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/domain/notification"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/goroutine"
	"fieldops/internal/shared/logger"
)

// TransactionRunner runs a function inside a database transaction. The
// shared db.TransactionManager satisfies it; tests substitute a passthrough.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransitionStatusCommand struct {
	JobID     uint
	CompanyID uint
	ActorID   uint
	NewStatus string
	Notes     string
}

type TransitionStatusUseCase struct {
	machine    *StatusMachine
	totalCalc  *CalculateJobTotalUseCase
	txMgr      TransactionRunner
	dispatcher notification.Dispatcher
	logger     logger.Interface
}

func NewTransitionStatusUseCase(
	machine *StatusMachine,
	totalCalc *CalculateJobTotalUseCase,
	txMgr TransactionRunner,
	dispatcher notification.Dispatcher,
	logger logger.Interface,
) *TransitionStatusUseCase {
	return &TransitionStatusUseCase{
		machine:    machine,
		totalCalc:  totalCalc,
		txMgr:      txMgr,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *TransitionStatusUseCase) Execute(ctx context.Context, cmd TransitionStatusCommand) (*dto.EquipmentStatusDTO, error) {
	uc.logger.Infow("executing transition status use case",
		"job_id", cmd.JobID, "new_status", cmd.NewStatus, "actor_id", cmd.ActorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid transition status command", "error", err)
		return nil, err
	}

	newStatus := vo.RepairStatus(cmd.NewStatus)
	now := time.Now().UTC()

	var outcome *TransitionOutcome
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		outcome, err = uc.machine.Transition(txCtx, cmd.CompanyID, cmd.JobID, newStatus, cmd.ActorID, cmd.Notes, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("equipment status transitioned",
		"job_id", cmd.JobID, "from", outcome.FromStatus, "to", outcome.ToStatus)

	// the job total refresh on return is best-effort and must not undo the
	// committed transition
	if newStatus.IsReturned() && uc.totalCalc != nil {
		if _, err := uc.totalCalc.Execute(ctx, CalculateJobTotalCommand{
			JobID:     cmd.JobID,
			CompanyID: cmd.CompanyID,
			Persist:   true,
		}); err != nil {
			uc.logger.Errorw("failed to refresh job total on return", "error", err, "job_id", cmd.JobID)
		}
	}

	uc.notifyStatusChanged(outcome, cmd.Notes)

	return equipmentStatusToDTO(outcome.Status), nil
}

func (uc *TransitionStatusUseCase) validateCommand(cmd TransitionStatusCommand) error {
	if cmd.JobID == 0 {
		return errors.NewValidationError("job ID is required")
	}
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if !vo.RepairStatus(cmd.NewStatus).IsValid() {
		return errors.NewValidationError("invalid repair status: " + cmd.NewStatus)
	}
	return nil
}

// notifyStatusChanged dispatches after the transaction committed; failures
// are logged and never surfaced to the caller.
func (uc *TransitionStatusUseCase) notifyStatusChanged(outcome *TransitionOutcome, notes string) {
	if uc.dispatcher == nil {
		return
	}

	event := notification.StatusChangedEvent{
		CompanyID:  outcome.Job.CompanyID(),
		JobID:      outcome.Job.ID(),
		JobNumber:  outcome.Job.Number(),
		FromStatus: outcome.FromStatus.String(),
		ToStatus:   outcome.ToStatus.String(),
		Notes:      notes,
	}

	goroutine.SafeGo(uc.logger, "dispatch status change notification", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uc.dispatcher.DispatchStatusChanged(ctx, event); err != nil {
			uc.logger.Errorw("failed to dispatch status change notification",
				"error", err, "job_id", event.JobID, "to_status", event.ToStatus)
		}
	})
}

func equipmentStatusToDTO(es *workshop.EquipmentStatus) *dto.EquipmentStatusDTO {
	current := es.CurrentStatus()
	transitions := current.ValidTransitions()
	valid := make([]string, 0, len(transitions))
	for _, s := range transitions {
		valid = append(valid, s.String())
	}

	return &dto.EquipmentStatusDTO{
		JobID:             es.JobID(),
		CurrentStatus:     current.String(),
		ValidTransitions:  valid,
		PendingIntakeAt:   es.PendingIntakeAt(),
		InTransitAt:       es.InTransitAt(),
		ReceivedAt:        es.ReceivedAt(),
		InRepairAt:        es.InRepairAt(),
		RepairCompletedAt: es.RepairCompletedAt(),
		ReadyForPickupAt:  es.ReadyForPickupAt(),
		OutForDeliveryAt:  es.OutForDeliveryAt(),
		ReturnedAt:        es.ReturnedAt(),
		UpdatedAt:         es.UpdatedAt(),
	}
}
