package usecases

import (
	"context"

	"fieldops/internal/domain/job"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type DeleteJobCommand struct {
	JobID     uint
	CompanyID uint
}

type DeleteJobResult struct {
	JobID uint
}

type DeleteJobUseCase struct {
	jobRepo job.Repository
	logger  logger.Interface
}

func NewDeleteJobUseCase(jobRepo job.Repository, logger logger.Interface) *DeleteJobUseCase {
	return &DeleteJobUseCase{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

func (uc *DeleteJobUseCase) Execute(ctx context.Context, cmd DeleteJobCommand) (*DeleteJobResult, error) {
	uc.logger.Infow("executing delete job use case", "job_id", cmd.JobID, "company_id", cmd.CompanyID)

	if cmd.JobID == 0 {
		return nil, errors.NewValidationError("job ID is required")
	}
	if cmd.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	j, err := uc.jobRepo.GetByID(ctx, cmd.CompanyID, cmd.JobID)
	if err != nil {
		uc.logger.Errorw("failed to get job", "error", err, "job_id", cmd.JobID)
		return nil, err
	}
	if j == nil {
		return nil, errors.NewNotFoundError("job not found")
	}

	if !j.CanBeDeleted() {
		return nil, errors.NewConflictError("completed jobs cannot be deleted")
	}

	if err := uc.jobRepo.Delete(ctx, cmd.CompanyID, cmd.JobID); err != nil {
		uc.logger.Errorw("failed to delete job", "job_id", cmd.JobID, "error", err)
		return nil, errors.NewInternalError("failed to delete job")
	}

	uc.logger.Infow("job deleted successfully", "job_id", cmd.JobID)

	return &DeleteJobResult{JobID: cmd.JobID}, nil
}
