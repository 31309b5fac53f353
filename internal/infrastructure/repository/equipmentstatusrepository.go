package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fieldops/internal/domain/workshop"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/shared/db"
)

type EquipmentStatusRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentStatusMapper
}

func NewEquipmentStatusRepository(database *gorm.DB) *EquipmentStatusRepository {
	return &EquipmentStatusRepository{
		db:     database,
		mapper: mappers.NewEquipmentStatusMapper(),
	}
}

func (r *EquipmentStatusRepository) Save(ctx context.Context, es *workshop.EquipmentStatus) error {
	model := r.mapper.ToModel(es)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save equipment status: %w", err)
	}

	return es.SetID(model.ID)
}

func (r *EquipmentStatusRepository) Update(ctx context.Context, es *workshop.EquipmentStatus) error {
	model := r.mapper.ToModel(es)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EquipmentStatusModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment status: %w", result.Error)
	}

	return nil
}

// GetByJobID returns (nil, nil) when the job has no status row, which is the
// normal state for on-site jobs.
func (r *EquipmentStatusRepository) GetByJobID(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error) {
	return r.getByJobID(ctx, jobID, false)
}

// GetByJobIDForUpdate takes a row lock; must run inside a transaction.
func (r *EquipmentStatusRepository) GetByJobIDForUpdate(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error) {
	return r.getByJobID(ctx, jobID, true)
}

func (r *EquipmentStatusRepository) getByJobID(ctx context.Context, jobID uint, forUpdate bool) (*workshop.EquipmentStatus, error) {
	var model models.EquipmentStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("job_id = ?", jobID)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find equipment status: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentStatusRepository) ListByStatuses(ctx context.Context, companyID uint, statuses []workshop.RepairStatus) ([]*workshop.EquipmentStatus, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = s.String()
	}

	var statusModels []models.EquipmentStatusModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.
		Scopes(db.CompanyScoped(companyID)).
		Where("current_status IN ?", values).
		Find(&statusModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment statuses: %w", err)
	}

	result := make([]*workshop.EquipmentStatus, len(statusModels))
	for i, model := range statusModels {
		es, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		result[i] = es
	}

	return result, nil
}
