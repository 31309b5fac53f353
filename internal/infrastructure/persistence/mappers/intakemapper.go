package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"fieldops/internal/domain/workshop"
	"fieldops/internal/infrastructure/persistence/models"
)

type IntakeMapper interface {
	ToModel(intake *workshop.EquipmentIntake) *models.EquipmentIntakeModel
	ToDomain(model *models.EquipmentIntakeModel) (*workshop.EquipmentIntake, error)
}

type IntakeMapperImpl struct{}

func NewIntakeMapper() IntakeMapper {
	return &IntakeMapperImpl{}
}

func (m *IntakeMapperImpl) ToModel(intake *workshop.EquipmentIntake) *models.EquipmentIntakeModel {
	model := &models.EquipmentIntakeModel{
		ID:                    intake.ID(),
		JobID:                 intake.JobID(),
		CompanyID:             intake.CompanyID(),
		ReportedIssue:         intake.ReportedIssue(),
		ConditionNotes:        intake.ConditionNotes(),
		CustomerSignatureRef:  intake.CustomerSignatureRef(),
		EstimatedRepairHours:  intake.EstimatedRepairHours(),
		EstimatedCompletionAt: intake.EstimatedCompletionAt(),
		CreatedAt:             intake.CreatedAt(),
		UpdatedAt:             intake.UpdatedAt(),
	}

	if accessories := intake.Accessories(); len(accessories) > 0 {
		raw, _ := json.Marshal(accessories)
		model.Accessories = datatypes.JSON(raw)
	}

	return model
}

func (m *IntakeMapperImpl) ToDomain(model *models.EquipmentIntakeModel) (*workshop.EquipmentIntake, error) {
	var accessories []string
	if len(model.Accessories) > 0 {
		if err := json.Unmarshal(model.Accessories, &accessories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal accessories for intake %d: %w", model.ID, err)
		}
	}

	intake, err := workshop.ReconstructIntake(workshop.ReconstructIntakeParams{
		ID:                    model.ID,
		JobID:                 model.JobID,
		CompanyID:             model.CompanyID,
		ReportedIssue:         model.ReportedIssue,
		ConditionNotes:        model.ConditionNotes,
		Accessories:           accessories,
		CustomerSignatureRef:  model.CustomerSignatureRef,
		EstimatedRepairHours:  model.EstimatedRepairHours,
		EstimatedCompletionAt: model.EstimatedCompletionAt,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct intake %d: %w", model.ID, err)
	}
	return intake, nil
}
