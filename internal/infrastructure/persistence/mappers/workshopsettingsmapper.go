package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"fieldops/internal/domain/setting"
	"fieldops/internal/infrastructure/persistence/models"
)

type WorkshopSettingsMapper interface {
	ToModel(s *setting.WorkshopSettings) *models.WorkshopSettingsModel
	ToDomain(model *models.WorkshopSettingsModel) (*setting.WorkshopSettings, error)
}

type WorkshopSettingsMapperImpl struct{}

func NewWorkshopSettingsMapper() WorkshopSettingsMapper {
	return &WorkshopSettingsMapperImpl{}
}

func (m *WorkshopSettingsMapperImpl) ToModel(s *setting.WorkshopSettings) *models.WorkshopSettingsModel {
	model := &models.WorkshopSettingsModel{
		ID:                          s.ID(),
		CompanyID:                   s.CompanyID(),
		MaxConcurrentJobs:           s.MaxConcurrentJobs(),
		MaxJobsPerTechnician:        s.MaxJobsPerTechnician(),
		DefaultEstimatedRepairHours: s.DefaultEstimatedRepairHours(),
		DefaultPickupDeliveryFee:    s.DefaultPickupDeliveryFeeCents(),
		NotifyOnStatusChange:        s.NotifyOnStatusChange(),
		CreatedAt:                   s.CreatedAt(),
		UpdatedAt:                   s.UpdatedAt(),
	}

	if templates := s.NotificationTemplates(); len(templates) > 0 {
		raw, _ := json.Marshal(templates)
		model.NotificationTemplates = datatypes.JSON(raw)
	}

	return model
}

func (m *WorkshopSettingsMapperImpl) ToDomain(model *models.WorkshopSettingsModel) (*setting.WorkshopSettings, error) {
	var templates map[string]string
	if len(model.NotificationTemplates) > 0 {
		if err := json.Unmarshal(model.NotificationTemplates, &templates); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification templates for settings %d: %w", model.ID, err)
		}
	}

	return setting.ReconstructWorkshopSettings(setting.ReconstructParams{
		ID:                            model.ID,
		CompanyID:                     model.CompanyID,
		MaxConcurrentJobs:             model.MaxConcurrentJobs,
		MaxJobsPerTechnician:          model.MaxJobsPerTechnician,
		DefaultEstimatedRepairHours:   model.DefaultEstimatedRepairHours,
		DefaultPickupDeliveryFeeCents: model.DefaultPickupDeliveryFee,
		NotifyOnStatusChange:          model.NotifyOnStatusChange,
		NotificationTemplates:         templates,
		CreatedAt:                     model.CreatedAt,
		UpdatedAt:                     model.UpdatedAt,
	}), nil
}
