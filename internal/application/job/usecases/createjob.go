package usecases

import (
	"context"
	"time"

	"fieldops/internal/domain/job"
	vo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type CreateJobCommand struct {
	CompanyID     uint
	CustomerID    uint
	Description   string
	Priority      string
	LocationType  string
	EquipmentID   *uint
	EquipmentType string
	ScheduledAt   *time.Time
	DueDate       *time.Time

	EstimatedDurationMinutes int
	PickupDeliveryFeeCents   int64
}

type CreateJobResult struct {
	JobID     uint
	Number    string
	Status    string
	CreatedAt time.Time
}

type CreateJobUseCase struct {
	jobRepo   job.Repository
	numberGen job.NumberGenerator
	logger    logger.Interface
}

func NewCreateJobUseCase(
	jobRepo job.Repository,
	numberGen job.NumberGenerator,
	logger logger.Interface,
) *CreateJobUseCase {
	return &CreateJobUseCase{
		jobRepo:   jobRepo,
		numberGen: numberGen,
		logger:    logger,
	}
}

func (uc *CreateJobUseCase) Execute(ctx context.Context, cmd CreateJobCommand) (*CreateJobResult, error) {
	uc.logger.Infow("executing create job use case",
		"company_id", cmd.CompanyID, "customer_id", cmd.CustomerID, "location_type", cmd.LocationType)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create job command", "error", err)
		return nil, err
	}

	priority := vo.Priority(cmd.Priority)
	locationType := vo.LocationType(cmd.LocationType)

	newJob, err := job.NewJob(cmd.CompanyID, cmd.CustomerID, cmd.Description, priority, locationType)
	if err != nil {
		uc.logger.Errorw("failed to create job entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.EquipmentID != nil {
		newJob.SetEquipment(*cmd.EquipmentID, cmd.EquipmentType)
	}
	newJob.SetSchedule(cmd.ScheduledAt, cmd.DueDate, cmd.EstimatedDurationMinutes)
	if locationType == vo.LocationWorkshop && cmd.PickupDeliveryFeeCents > 0 {
		newJob.SetDelivery(nil, nil, cmd.PickupDeliveryFeeCents)
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate job number", "error", err)
		return nil, errors.NewInternalError("failed to generate job number")
	}
	if err := newJob.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.jobRepo.Save(ctx, newJob); err != nil {
		uc.logger.Errorw("failed to save job", "error", err)
		return nil, err
	}

	uc.logger.Infow("job created successfully", "job_id", newJob.ID(), "number", newJob.Number())

	return &CreateJobResult{
		JobID:     newJob.ID(),
		Number:    newJob.Number(),
		Status:    newJob.Status().String(),
		CreatedAt: newJob.CreatedAt(),
	}, nil
}

func (uc *CreateJobUseCase) validateCommand(cmd CreateJobCommand) error {
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer ID is required")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	priority := vo.Priority(cmd.Priority)
	if !priority.IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	locationType := vo.LocationType(cmd.LocationType)
	if !locationType.IsValid() {
		return errors.NewValidationError("invalid location type")
	}

	if locationType == vo.LocationWorkshop && cmd.EquipmentID == nil {
		return errors.NewValidationError("workshop jobs require equipment")
	}

	return nil
}
