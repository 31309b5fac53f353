package usecases

import (
	"context"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/domain/workshop"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type GetStatusHistoryQuery struct {
	JobID     uint
	CompanyID uint
}

type GetStatusHistoryUseCase struct {
	statusRepo  workshop.EquipmentStatusRepository
	historyRepo workshop.StatusHistoryRepository
	logger      logger.Interface
}

func NewGetStatusHistoryUseCase(
	statusRepo workshop.EquipmentStatusRepository,
	historyRepo workshop.StatusHistoryRepository,
	logger logger.Interface,
) *GetStatusHistoryUseCase {
	return &GetStatusHistoryUseCase{
		statusRepo:  statusRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// Execute returns the transition log for a job, newest first.
func (uc *GetStatusHistoryUseCase) Execute(ctx context.Context, query GetStatusHistoryQuery) ([]dto.StatusHistoryEntryDTO, error) {
	if query.JobID == 0 {
		return nil, errors.NewValidationError("job ID is required")
	}
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	es, err := uc.statusRepo.GetByJobID(ctx, query.JobID)
	if err != nil {
		return nil, err
	}
	if es == nil || es.CompanyID() != query.CompanyID {
		return nil, errors.NewNotFoundError("equipment status not found")
	}

	entries, err := uc.historyRepo.ListByJobID(ctx, query.JobID)
	if err != nil {
		uc.logger.Errorw("failed to list status history", "error", err, "job_id", query.JobID)
		return nil, err
	}

	result := make([]dto.StatusHistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, dto.StatusHistoryEntryDTO{
			ID:         entry.ID,
			JobID:      entry.JobID,
			FromStatus: entry.FromStatus.String(),
			ToStatus:   entry.ToStatus.String(),
			ActorID:    entry.ActorID,
			Notes:      entry.Notes,
			CreatedAt:  entry.CreatedAt,
		})
	}

	return result, nil
}
