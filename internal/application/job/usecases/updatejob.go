package usecases

import (
	"context"
	"time"

	"fieldops/internal/application/job/dto"
	"fieldops/internal/domain/job"
	vo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

// UpdateJobCommand updates the schedulable fields of a job. Nil pointer
// fields are left unchanged. Status and technician assignment are not
// updatable here; those move through the workshop flows.
type UpdateJobCommand struct {
	JobID       uint
	CompanyID   uint
	Description *string
	Priority    *string
	ScheduledAt *time.Time
	DueDate     *time.Time

	EstimatedDurationMinutes *int
}

type UpdateJobUseCase struct {
	jobRepo job.Repository
	logger  logger.Interface
}

func NewUpdateJobUseCase(jobRepo job.Repository, logger logger.Interface) *UpdateJobUseCase {
	return &UpdateJobUseCase{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

func (uc *UpdateJobUseCase) Execute(ctx context.Context, cmd UpdateJobCommand) (*dto.JobDTO, error) {
	uc.logger.Infow("executing update job use case", "job_id", cmd.JobID, "company_id", cmd.CompanyID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update job command", "error", err)
		return nil, err
	}

	j, err := uc.jobRepo.GetByID(ctx, cmd.CompanyID, cmd.JobID)
	if err != nil {
		uc.logger.Errorw("failed to get job", "error", err, "job_id", cmd.JobID)
		return nil, err
	}
	if j == nil {
		return nil, errors.NewNotFoundError("job not found")
	}

	if cmd.Description != nil {
		if err := j.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		if err := j.SetPriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ScheduledAt != nil || cmd.DueDate != nil || cmd.EstimatedDurationMinutes != nil {
		scheduledAt := j.ScheduledAt()
		if cmd.ScheduledAt != nil {
			scheduledAt = cmd.ScheduledAt
		}
		dueDate := j.DueDate()
		if cmd.DueDate != nil {
			dueDate = cmd.DueDate
		}
		duration := j.EstimatedDurationMinutes()
		if cmd.EstimatedDurationMinutes != nil {
			duration = *cmd.EstimatedDurationMinutes
		}
		j.SetSchedule(scheduledAt, dueDate, duration)
	}

	if err := uc.jobRepo.Update(ctx, j); err != nil {
		uc.logger.Errorw("failed to update job", "error", err, "job_id", cmd.JobID)
		return nil, err
	}

	uc.logger.Infow("job updated successfully", "job_id", j.ID())

	result := dto.ToJobDTO(j)
	return &result, nil
}

func (uc *UpdateJobUseCase) validateCommand(cmd UpdateJobCommand) error {
	if cmd.JobID == 0 {
		return errors.NewValidationError("job ID is required")
	}

	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	if cmd.EstimatedDurationMinutes != nil && *cmd.EstimatedDurationMinutes < 0 {
		return errors.NewValidationError("estimated duration cannot be negative")
	}

	return nil
}
