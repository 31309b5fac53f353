package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/workshop"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/shared/db"
)

type StatusHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentStatusMapper
}

func NewStatusHistoryRepository(database *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{
		db:     database,
		mapper: mappers.NewEquipmentStatusMapper(),
	}
}

// Append writes one transition row. The log is append-only; there is no
// update or delete path.
func (r *StatusHistoryRepository) Append(ctx context.Context, entry *workshop.StatusHistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}

	entry.ID = model.ID
	return nil
}

// ListByJobID returns the transition log newest first.
func (r *StatusHistoryRepository) ListByJobID(ctx context.Context, jobID uint) ([]*workshop.StatusHistoryEntry, error) {
	var historyModels []models.EquipmentStatusHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Find(&historyModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	entries := make([]*workshop.StatusHistoryEntry, len(historyModels))
	for i, model := range historyModels {
		entries[i] = r.mapper.HistoryToDomain(&model)
	}

	return entries, nil
}
