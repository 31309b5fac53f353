package mappers

import (
	"fmt"

	"fieldops/internal/domain/job"
	vo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/infrastructure/persistence/models"
)

// JobMapper handles the conversion between Job domain entities and
// persistence models.
type JobMapper interface {
	ToModel(j *job.Job) *models.JobModel
	ToDomain(model *models.JobModel) (*job.Job, error)
	PartToDomain(model *models.JobPartModel) job.Part
}

type JobMapperImpl struct{}

func NewJobMapper() JobMapper {
	return &JobMapperImpl{}
}

func (m *JobMapperImpl) ToModel(j *job.Job) *models.JobModel {
	return &models.JobModel{
		ID:                       j.ID(),
		CompanyID:                j.CompanyID(),
		CustomerID:               j.CustomerID(),
		EquipmentID:              j.EquipmentID(),
		EquipmentType:            j.EquipmentType(),
		TechnicianID:             j.TechnicianID(),
		Number:                   j.Number(),
		Description:              j.Description(),
		Priority:                 j.Priority().String(),
		Status:                   j.Status().String(),
		LocationType:             j.LocationType().String(),
		ScheduledAt:              j.ScheduledAt(),
		DueDate:                  j.DueDate(),
		StartedAt:                j.StartedAt(),
		CompletedAt:              j.CompletedAt(),
		EstimatedDurationMinutes: j.EstimatedDurationMinutes(),
		ActualDurationMinutes:    j.ActualDurationMinutes(),
		TotalCostCents:           j.TotalCostCents(),
		DeliveryDate:             j.DeliveryDate(),
		DeliveryTechnicianID:     j.DeliveryTechnicianID(),
		PickupDeliveryFeeCents:   j.PickupDeliveryFeeCents(),
		CreatedAt:                j.CreatedAt(),
		UpdatedAt:                j.UpdatedAt(),
	}
}

func (m *JobMapperImpl) ToDomain(model *models.JobModel) (*job.Job, error) {
	j, err := job.ReconstructJob(job.ReconstructParams{
		ID:                       model.ID,
		CompanyID:                model.CompanyID,
		CustomerID:               model.CustomerID,
		EquipmentID:              model.EquipmentID,
		EquipmentType:            model.EquipmentType,
		TechnicianID:             model.TechnicianID,
		Number:                   model.Number,
		Description:              model.Description,
		Priority:                 vo.Priority(model.Priority),
		Status:                   vo.JobStatus(model.Status),
		LocationType:             vo.LocationType(model.LocationType),
		ScheduledAt:              model.ScheduledAt,
		DueDate:                  model.DueDate,
		StartedAt:                model.StartedAt,
		CompletedAt:              model.CompletedAt,
		EstimatedDurationMinutes: model.EstimatedDurationMinutes,
		ActualDurationMinutes:    model.ActualDurationMinutes,
		TotalCostCents:           model.TotalCostCents,
		DeliveryDate:             model.DeliveryDate,
		DeliveryTechnicianID:     model.DeliveryTechnicianID,
		PickupDeliveryFeeCents:   model.PickupDeliveryFeeCents,
		CreatedAt:                model.CreatedAt,
		UpdatedAt:                model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct job %d: %w", model.ID, err)
	}
	return j, nil
}

func (m *JobMapperImpl) PartToDomain(model *models.JobPartModel) job.Part {
	return job.Part{
		ID:              model.ID,
		JobID:           model.JobID,
		InventoryItemID: model.InventoryItemID,
		Name:            model.Name,
		Quantity:        model.Quantity,
		UnitPriceCents:  model.UnitPriceCents,
	}
}
