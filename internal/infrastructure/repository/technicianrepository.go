package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/technician"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/shared/db"
)

type TechnicianRepository struct {
	db     *gorm.DB
	mapper mappers.TechnicianMapper
}

func NewTechnicianRepository(database *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{
		db:     database,
		mapper: mappers.NewTechnicianMapper(),
	}
}

// GetByID returns (nil, nil) when no technician matches.
func (r *TechnicianRepository) GetByID(ctx context.Context, id uint) (*technician.Technician, error) {
	var model models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *TechnicianRepository) ListActive(ctx context.Context, companyID uint) ([]*technician.Technician, error) {
	var technicianModels []models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.CompanyScoped(companyID)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&technicianModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	result := make([]*technician.Technician, len(technicianModels))
	for i, model := range technicianModels {
		result[i] = r.mapper.ToDomain(&model)
	}

	return result, nil
}
