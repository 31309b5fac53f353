package usecases

import (
	"context"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/domain/job"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type CalculateJobTotalCommand struct {
	JobID     uint
	CompanyID uint
	// Persist writes the computed total back onto the job record.
	Persist bool
}

// CalculateJobTotalUseCase sums consumed part line totals and, for workshop
// jobs, the pickup/delivery fee. Tax and labor are out of scope here.
type CalculateJobTotalUseCase struct {
	jobRepo  job.Repository
	partRepo job.PartRepository
	logger   logger.Interface
}

func NewCalculateJobTotalUseCase(
	jobRepo job.Repository,
	partRepo job.PartRepository,
	logger logger.Interface,
) *CalculateJobTotalUseCase {
	return &CalculateJobTotalUseCase{
		jobRepo:  jobRepo,
		partRepo: partRepo,
		logger:   logger,
	}
}

func (uc *CalculateJobTotalUseCase) Execute(ctx context.Context, cmd CalculateJobTotalCommand) (*dto.JobTotalDTO, error) {
	if cmd.JobID == 0 {
		return nil, errors.NewValidationError("job ID is required")
	}
	if cmd.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	j, err := uc.jobRepo.GetByID(ctx, cmd.CompanyID, cmd.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, errors.NewNotFoundError("job not found")
	}

	parts, err := uc.partRepo.ListByJob(ctx, cmd.JobID)
	if err != nil {
		return nil, err
	}

	var partsTotal int64
	for _, part := range parts {
		partsTotal += part.TotalCents()
	}

	var deliveryFee int64
	if j.IsWorkshopJob() {
		deliveryFee = j.PickupDeliveryFeeCents()
	}

	total := partsTotal + deliveryFee

	if cmd.Persist {
		j.SetTotalCost(total)
		if err := uc.jobRepo.Update(ctx, j); err != nil {
			uc.logger.Errorw("failed to persist job total", "error", err, "job_id", cmd.JobID)
			return nil, err
		}
	}

	return &dto.JobTotalDTO{
		JobID:            j.ID(),
		PartsTotalCents:  partsTotal,
		DeliveryFeeCents: deliveryFee,
		TotalCents:       total,
		TotalFormatted:   utils.FormatCents(total, ""),
	}, nil
}
