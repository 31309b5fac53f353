package usecases

import (
	"context"

	"fieldops/internal/application/job/dto"
	"fieldops/internal/domain/job"
	vo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type ListJobsQuery struct {
	CompanyID    uint
	Status       *string
	Priority     *string
	LocationType *string
	CustomerID   *uint
	TechnicianID *uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type ListJobsResult struct {
	Jobs       []dto.JobListItemDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListJobsUseCase struct {
	jobRepo job.Repository
	logger  logger.Interface
}

func NewListJobsUseCase(jobRepo job.Repository, logger logger.Interface) *ListJobsUseCase {
	return &ListJobsUseCase{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

func (uc *ListJobsUseCase) Execute(ctx context.Context, query ListJobsQuery) (*ListJobsResult, error) {
	uc.logger.Infow("executing list jobs use case",
		"company_id", query.CompanyID, "page", query.Page, "page_size", query.PageSize)

	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	if query.PageSize <= 0 {
		query.PageSize = 20
	}
	if query.PageSize > 100 {
		query.PageSize = 100
	}
	if query.Page < 1 {
		query.Page = 1
	}

	filter := job.Filter{
		CustomerID:   query.CustomerID,
		TechnicianID: query.TechnicianID,
		Page:         query.Page,
		PageSize:     query.PageSize,
		SortBy:       query.SortBy,
		SortOrder:    query.SortOrder,
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	if query.Status != nil {
		status, err := vo.NewJobStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		filter.Priority = &priority
	}

	if query.LocationType != nil {
		locationType, err := vo.NewLocationType(*query.LocationType)
		if err != nil {
			return nil, errors.NewValidationError("invalid location type")
		}
		filter.LocationType = &locationType
	}

	jobs, totalCount, err := uc.jobRepo.List(ctx, query.CompanyID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list jobs", "error", err)
		return nil, errors.NewInternalError("failed to list jobs")
	}

	items := make([]dto.JobListItemDTO, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, dto.ToJobListItemDTO(j))
	}

	return &ListJobsResult{
		Jobs:       items,
		TotalCount: totalCount,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
