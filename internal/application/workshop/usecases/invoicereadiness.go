package usecases

import (
	"context"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/domain/job"
	"fieldops/internal/domain/workshop"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type InvoiceReadinessQuery struct {
	JobID     uint
	CompanyID uint
}

// InvoiceReadinessUseCase reports whether a job can be invoiced: the job
// must be completed, and workshop jobs additionally need the equipment back
// with the customer.
type InvoiceReadinessUseCase struct {
	jobRepo    job.Repository
	statusRepo workshop.EquipmentStatusRepository
	logger     logger.Interface
}

func NewInvoiceReadinessUseCase(
	jobRepo job.Repository,
	statusRepo workshop.EquipmentStatusRepository,
	logger logger.Interface,
) *InvoiceReadinessUseCase {
	return &InvoiceReadinessUseCase{
		jobRepo:    jobRepo,
		statusRepo: statusRepo,
		logger:     logger,
	}
}

func (uc *InvoiceReadinessUseCase) Execute(ctx context.Context, query InvoiceReadinessQuery) (*dto.InvoiceReadinessDTO, error) {
	if query.JobID == 0 {
		return nil, errors.NewValidationError("job ID is required")
	}
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	j, err := uc.jobRepo.GetByID(ctx, query.CompanyID, query.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, errors.NewNotFoundError("job not found")
	}

	result := &dto.InvoiceReadinessDTO{JobID: j.ID()}

	if !j.Status().IsCompleted() {
		result.Reason = "job is not completed"
		return result, nil
	}

	if j.IsWorkshopJob() {
		es, err := uc.statusRepo.GetByJobID(ctx, query.JobID)
		if err != nil {
			return nil, err
		}
		if es == nil {
			result.Reason = "equipment status not found"
			return result, nil
		}
		if !es.CurrentStatus().IsReturned() {
			result.Reason = "equipment has not been returned to the customer"
			return result, nil
		}
	}

	result.Ready = true
	return result, nil
}
