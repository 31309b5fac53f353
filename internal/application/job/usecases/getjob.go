package usecases

import (
	"context"

	"fieldops/internal/application/job/dto"
	"fieldops/internal/domain/job"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type GetJobQuery struct {
	JobID     uint
	CompanyID uint
}

type GetJobUseCase struct {
	jobRepo job.Repository
	logger  logger.Interface
}

func NewGetJobUseCase(jobRepo job.Repository, logger logger.Interface) *GetJobUseCase {
	return &GetJobUseCase{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

func (uc *GetJobUseCase) Execute(ctx context.Context, query GetJobQuery) (*dto.JobDTO, error) {
	if query.JobID == 0 {
		return nil, errors.NewValidationError("job ID is required")
	}
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	j, err := uc.jobRepo.GetByID(ctx, query.CompanyID, query.JobID)
	if err != nil {
		uc.logger.Errorw("failed to get job", "error", err, "job_id", query.JobID)
		return nil, err
	}
	if j == nil {
		return nil, errors.NewNotFoundError("job not found")
	}

	result := dto.ToJobDTO(j)
	return &result, nil
}
