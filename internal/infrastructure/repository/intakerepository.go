package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/workshop"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/shared/db"
)

type IntakeRepository struct {
	db     *gorm.DB
	mapper mappers.IntakeMapper
}

func NewIntakeRepository(database *gorm.DB) *IntakeRepository {
	return &IntakeRepository{
		db:     database,
		mapper: mappers.NewIntakeMapper(),
	}
}

func (r *IntakeRepository) Save(ctx context.Context, intake *workshop.EquipmentIntake) error {
	model := r.mapper.ToModel(intake)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save equipment intake: %w", err)
	}

	return intake.SetID(model.ID)
}

func (r *IntakeRepository) Update(ctx context.Context, intake *workshop.EquipmentIntake) error {
	model := r.mapper.ToModel(intake)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EquipmentIntakeModel{}).
		Where("id = ?", model.ID).
		Select("condition_notes", "customer_signature_ref", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment intake: %w", result.Error)
	}

	return nil
}

// GetByJobID returns (nil, nil) when the job has no intake record yet.
func (r *IntakeRepository) GetByJobID(ctx context.Context, jobID uint) (*workshop.EquipmentIntake, error) {
	var model models.EquipmentIntakeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("job_id = ?", jobID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find equipment intake: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
