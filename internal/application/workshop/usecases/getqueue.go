package usecases

import (
	"context"
	"time"

	"fieldops/internal/application/workshop/dto"
	jobvo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/domain/workshop"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type GetQueueQuery struct {
	CompanyID     uint
	EquipmentType string
	CustomerID    *uint
	Priority      string
}

// GetQueueUseCase returns the prioritized repair queue. Pure read; nothing
// is mutated and no locks are taken.
type GetQueueUseCase struct {
	queueRepo workshop.QueueRepository
	logger    logger.Interface
}

func NewGetQueueUseCase(queueRepo workshop.QueueRepository, logger logger.Interface) *GetQueueUseCase {
	return &GetQueueUseCase{
		queueRepo: queueRepo,
		logger:    logger,
	}
}

func (uc *GetQueueUseCase) Execute(ctx context.Context, query GetQueueQuery) ([]dto.QueueItemDTO, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	filter := workshop.QueueFilter{
		EquipmentType: query.EquipmentType,
		CustomerID:    query.CustomerID,
	}
	if query.Priority != "" {
		priority, err := jobvo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority: " + query.Priority)
		}
		filter.Priority = &priority
	}

	entries, err := uc.queueRepo.ListQueue(ctx, query.CompanyID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list workshop queue", "error", err, "company_id", query.CompanyID)
		return nil, err
	}

	ranked := workshop.Rank(entries, time.Now().UTC())

	items := make([]dto.QueueItemDTO, 0, len(ranked))
	for _, entry := range ranked {
		item := dto.QueueItemDTO{
			JobID:         entry.JobID,
			JobNumber:     entry.JobNumber,
			CustomerID:    entry.CustomerID,
			CustomerName:  entry.CustomerName,
			EquipmentType: entry.EquipmentType,
			Priority:      entry.Priority.String(),
			RepairStatus:  entry.RepairStatus.String(),
			TechnicianID:  entry.TechnicianID,
			IntakeAt:      entry.IntakeAt,
			DaysWaiting:   entry.DaysWaiting,
			IsOverdue:     entry.IsOverdue,
			Score:         entry.Score,
		}
		if !entry.EstimatedAt.IsZero() {
			estimated := entry.EstimatedAt
			item.EstimatedAt = &estimated
		}
		items = append(items, item)
	}

	return items, nil
}
