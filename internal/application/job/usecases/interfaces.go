package usecases

import (
	"context"

	"fieldops/internal/application/job/dto"
)

type CreateJobExecutor interface {
	Execute(ctx context.Context, cmd CreateJobCommand) (*CreateJobResult, error)
}

type GetJobExecutor interface {
	Execute(ctx context.Context, query GetJobQuery) (*dto.JobDTO, error)
}

type ListJobsExecutor interface {
	Execute(ctx context.Context, query ListJobsQuery) (*ListJobsResult, error)
}

type UpdateJobExecutor interface {
	Execute(ctx context.Context, cmd UpdateJobCommand) (*dto.JobDTO, error)
}

type DeleteJobExecutor interface {
	Execute(ctx context.Context, cmd DeleteJobCommand) (*DeleteJobResult, error)
}
