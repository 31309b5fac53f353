package usecases

import (
	"context"
	"time"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/domain/job"
	"fieldops/internal/domain/setting"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type IntakeEquipmentCommand struct {
	JobID                uint
	CompanyID            uint
	ActorID              uint
	ReportedIssue        string
	ConditionNotes       string
	Accessories          []string
	CustomerSignatureRef string
	// EstimatedRepairHours falls back to the company's workshop settings
	// (or the system default) when zero.
	EstimatedRepairHours int
}

// IntakeEquipmentUseCase records the equipment's arrival at the depot. It
// creates the intake record and moves (or creates) the equipment status row
// at received, with the workshop-wide capacity check as the admission gate.
type IntakeEquipmentUseCase struct {
	jobRepo     job.Repository
	statusRepo  workshop.EquipmentStatusRepository
	historyRepo workshop.StatusHistoryRepository
	intakeRepo  workshop.IntakeRepository
	settingRepo setting.Repository
	capacity    *CapacityService
	machine     *StatusMachine
	txMgr       TransactionRunner
	logger      logger.Interface
}

func NewIntakeEquipmentUseCase(
	jobRepo job.Repository,
	statusRepo workshop.EquipmentStatusRepository,
	historyRepo workshop.StatusHistoryRepository,
	intakeRepo workshop.IntakeRepository,
	settingRepo setting.Repository,
	capacity *CapacityService,
	machine *StatusMachine,
	txMgr TransactionRunner,
	logger logger.Interface,
) *IntakeEquipmentUseCase {
	return &IntakeEquipmentUseCase{
		jobRepo:     jobRepo,
		statusRepo:  statusRepo,
		historyRepo: historyRepo,
		intakeRepo:  intakeRepo,
		settingRepo: settingRepo,
		capacity:    capacity,
		machine:     machine,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *IntakeEquipmentUseCase) Execute(ctx context.Context, cmd IntakeEquipmentCommand) (*dto.IntakeDTO, error) {
	uc.logger.Infow("executing intake equipment use case",
		"job_id", cmd.JobID, "company_id", cmd.CompanyID, "actor_id", cmd.ActorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid intake equipment command", "error", err)
		return nil, err
	}

	now := time.Now().UTC()

	var result *dto.IntakeDTO
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		j, err := uc.jobRepo.GetByIDForUpdate(txCtx, cmd.CompanyID, cmd.JobID)
		if err != nil {
			return err
		}
		if j == nil || !j.IsWorkshopJob() {
			return errors.NewNotFoundError("workshop job not found")
		}

		existing, err := uc.intakeRepo.GetByJobID(txCtx, cmd.JobID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewConflictError("equipment has already been taken in for this job")
		}

		check, err := uc.capacity.CheckWorkshopCapacity(txCtx, cmd.CompanyID)
		if err != nil {
			return err
		}
		if !check.Allowed {
			return errors.NewCapacityExceededError(
				"workshop has reached its maximum number of concurrent jobs",
				check.Current, check.Max)
		}

		hours := cmd.EstimatedRepairHours
		if hours <= 0 {
			hours, err = uc.defaultEstimatedHours(txCtx, cmd.CompanyID)
			if err != nil {
				return err
			}
		}

		intake, err := workshop.NewEquipmentIntake(
			cmd.JobID,
			cmd.CompanyID,
			cmd.ReportedIssue,
			cmd.ConditionNotes,
			cmd.Accessories,
			cmd.CustomerSignatureRef,
			hours,
			now,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.intakeRepo.Save(txCtx, intake); err != nil {
			return err
		}

		es, err := uc.receiveEquipment(txCtx, cmd, now)
		if err != nil {
			return err
		}

		result = &dto.IntakeDTO{
			IntakeID:              intake.ID(),
			JobID:                 cmd.JobID,
			RepairStatus:          es.CurrentStatus().String(),
			EstimatedRepairHours:  hours,
			EstimatedCompletionAt: intake.EstimatedCompletionAt(),
			CreatedAt:             intake.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("equipment intake recorded", "job_id", cmd.JobID, "intake_id", result.IntakeID)

	return result, nil
}

// receiveEquipment moves an existing pending_intake/in_transit status row to
// received, or creates the row at received with its initial history entry
// when the equipment was brought in directly.
func (uc *IntakeEquipmentUseCase) receiveEquipment(ctx context.Context, cmd IntakeEquipmentCommand, now time.Time) (*workshop.EquipmentStatus, error) {
	es, err := uc.statusRepo.GetByJobIDForUpdate(ctx, cmd.JobID)
	if err != nil {
		return nil, err
	}

	if es != nil {
		outcome, err := uc.machine.Transition(ctx, cmd.CompanyID, cmd.JobID, vo.StatusReceived, cmd.ActorID, "equipment received at workshop", now)
		if err != nil {
			return nil, err
		}
		return outcome.Status, nil
	}

	es, err = workshop.NewEquipmentStatus(cmd.JobID, cmd.CompanyID, vo.StatusReceived, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.statusRepo.Save(ctx, es); err != nil {
		return nil, err
	}

	j, err := uc.jobRepo.GetByIDForUpdate(ctx, cmd.CompanyID, cmd.JobID)
	if err != nil {
		return nil, err
	}
	if err := j.ApplyDerivedStatus(vo.DeriveJobStatus(vo.StatusReceived), now); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}
	if err := uc.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	entry, err := workshop.NewStatusHistoryEntry(es.ID(), cmd.JobID, "", vo.StatusReceived, cmd.ActorID, "equipment received at workshop", now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.historyRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	return es, nil
}

func (uc *IntakeEquipmentUseCase) defaultEstimatedHours(ctx context.Context, companyID uint) (int, error) {
	settings, err := uc.settingRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return 0, err
	}
	if settings == nil {
		settings = setting.DefaultWorkshopSettings(companyID)
	}
	return settings.DefaultEstimatedRepairHours(), nil
}

func (uc *IntakeEquipmentUseCase) validateCommand(cmd IntakeEquipmentCommand) error {
	if cmd.JobID == 0 {
		return errors.NewValidationError("job ID is required")
	}
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if len(cmd.ReportedIssue) == 0 {
		return errors.NewValidationError("reported issue is required")
	}
	if len(cmd.ReportedIssue) > 2000 {
		return errors.NewValidationError("reported issue exceeds maximum length of 2000 characters")
	}
	return nil
}
