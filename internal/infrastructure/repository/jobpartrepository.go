package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/job"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/shared/db"
)

type JobPartRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewJobPartRepository(database *gorm.DB) *JobPartRepository {
	return &JobPartRepository{
		db:     database,
		mapper: mappers.NewJobMapper(),
	}
}

func (r *JobPartRepository) ListByJob(ctx context.Context, jobID uint) ([]job.Part, error) {
	var partModels []models.JobPartModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("job_id = ?", jobID).
		Order("id ASC").
		Find(&partModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job parts: %w", err)
	}

	parts := make([]job.Part, len(partModels))
	for i, model := range partModels {
		parts[i] = r.mapper.PartToDomain(&model)
	}

	return parts, nil
}
