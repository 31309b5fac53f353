package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/setting"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/shared/db"
)

type WorkshopSettingsRepository struct {
	db     *gorm.DB
	mapper mappers.WorkshopSettingsMapper
}

func NewWorkshopSettingsRepository(database *gorm.DB) *WorkshopSettingsRepository {
	return &WorkshopSettingsRepository{
		db:     database,
		mapper: mappers.NewWorkshopSettingsMapper(),
	}
}

func (r *WorkshopSettingsRepository) Save(ctx context.Context, s *setting.WorkshopSettings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save workshop settings: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *WorkshopSettingsRepository) Update(ctx context.Context, s *setting.WorkshopSettings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkshopSettingsModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "company_id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update workshop settings: %w", result.Error)
	}

	return nil
}

// GetByCompanyID returns (nil, nil) when the company has no settings row;
// capacity checks treat that as unlimited.
func (r *WorkshopSettingsRepository) GetByCompanyID(ctx context.Context, companyID uint) (*setting.WorkshopSettings, error) {
	var model models.WorkshopSettingsModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find workshop settings: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
