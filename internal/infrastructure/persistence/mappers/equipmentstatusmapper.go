package mappers

import (
	"fmt"

	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/infrastructure/persistence/models"
)

// EquipmentStatusMapper converts equipment status records and their history
// entries between domain and persistence shapes.
type EquipmentStatusMapper interface {
	ToModel(es *workshop.EquipmentStatus) *models.EquipmentStatusModel
	ToDomain(model *models.EquipmentStatusModel) (*workshop.EquipmentStatus, error)
	HistoryToModel(entry *workshop.StatusHistoryEntry) *models.EquipmentStatusHistoryModel
	HistoryToDomain(model *models.EquipmentStatusHistoryModel) *workshop.StatusHistoryEntry
}

type EquipmentStatusMapperImpl struct{}

func NewEquipmentStatusMapper() EquipmentStatusMapper {
	return &EquipmentStatusMapperImpl{}
}

func (m *EquipmentStatusMapperImpl) ToModel(es *workshop.EquipmentStatus) *models.EquipmentStatusModel {
	return &models.EquipmentStatusModel{
		ID:                es.ID(),
		JobID:             es.JobID(),
		CompanyID:         es.CompanyID(),
		CurrentStatus:     es.CurrentStatus().String(),
		PendingIntakeAt:   es.PendingIntakeAt(),
		InTransitAt:       es.InTransitAt(),
		ReceivedAt:        es.ReceivedAt(),
		InRepairAt:        es.InRepairAt(),
		RepairCompletedAt: es.RepairCompletedAt(),
		ReadyForPickupAt:  es.ReadyForPickupAt(),
		OutForDeliveryAt:  es.OutForDeliveryAt(),
		ReturnedAt:        es.ReturnedAt(),
		CreatedAt:         es.CreatedAt(),
		UpdatedAt:         es.UpdatedAt(),
	}
}

func (m *EquipmentStatusMapperImpl) ToDomain(model *models.EquipmentStatusModel) (*workshop.EquipmentStatus, error) {
	es, err := workshop.ReconstructEquipmentStatus(workshop.ReconstructEquipmentStatusParams{
		ID:                model.ID,
		JobID:             model.JobID,
		CompanyID:         model.CompanyID,
		CurrentStatus:     vo.RepairStatus(model.CurrentStatus),
		PendingIntakeAt:   model.PendingIntakeAt,
		InTransitAt:       model.InTransitAt,
		ReceivedAt:        model.ReceivedAt,
		InRepairAt:        model.InRepairAt,
		RepairCompletedAt: model.RepairCompletedAt,
		ReadyForPickupAt:  model.ReadyForPickupAt,
		OutForDeliveryAt:  model.OutForDeliveryAt,
		ReturnedAt:        model.ReturnedAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct equipment status %d: %w", model.ID, err)
	}
	return es, nil
}

func (m *EquipmentStatusMapperImpl) HistoryToModel(entry *workshop.StatusHistoryEntry) *models.EquipmentStatusHistoryModel {
	return &models.EquipmentStatusHistoryModel{
		ID:                entry.ID,
		EquipmentStatusID: entry.EquipmentStatusID,
		JobID:             entry.JobID,
		FromStatus:        entry.FromStatus.String(),
		ToStatus:          entry.ToStatus.String(),
		ActorID:           entry.ActorID,
		Notes:             entry.Notes,
		CreatedAt:         entry.CreatedAt,
	}
}

func (m *EquipmentStatusMapperImpl) HistoryToDomain(model *models.EquipmentStatusHistoryModel) *workshop.StatusHistoryEntry {
	return &workshop.StatusHistoryEntry{
		ID:                model.ID,
		EquipmentStatusID: model.EquipmentStatusID,
		JobID:             model.JobID,
		FromStatus:        vo.RepairStatus(model.FromStatus),
		ToStatus:          vo.RepairStatus(model.ToStatus),
		ActorID:           model.ActorID,
		Notes:             model.Notes,
		CreatedAt:         model.CreatedAt,
	}
}
