package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	jobvo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/shared/db"
)

type QueueRepository struct {
	db *gorm.DB
}

func NewQueueRepository(database *gorm.DB) *QueueRepository {
	return &QueueRepository{db: database}
}

// queueRow is the flat scan target for the joined queue query.
type queueRow struct {
	JobID         uint
	JobNumber     string
	CustomerID    uint
	CustomerName  string
	EquipmentType string
	Priority      string
	RepairStatus  string
	TechnicianID  *uint
	IntakeAt      *time.Time
	EstimatedAt   *time.Time
}

// ListQueue returns the raw queue entries for jobs whose equipment is
// received or in repair. Scoring and ordering happen in the domain layer.
func (r *QueueRepository) ListQueue(ctx context.Context, companyID uint, filter workshop.QueueFilter) ([]workshop.QueueEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.JobModel{}).
		Select(`jobs.id AS job_id,
			jobs.number AS job_number,
			jobs.customer_id AS customer_id,
			customers.name AS customer_name,
			jobs.equipment_type AS equipment_type,
			jobs.priority AS priority,
			es.current_status AS repair_status,
			jobs.technician_id AS technician_id,
			es.received_at AS intake_at,
			ei.estimated_completion_at AS estimated_at`).
		Joins("JOIN equipment_statuses es ON es.job_id = jobs.id").
		Joins("LEFT JOIN equipment_intakes ei ON ei.job_id = jobs.id").
		Joins("LEFT JOIN customers ON customers.id = jobs.customer_id").
		Scopes(db.NotDeletedWithAlias("jobs")).
		Where("jobs.company_id = ?", companyID).
		Where("jobs.status <> ?", "cancelled").
		Where("es.current_status IN ?", []string{"received", "in_repair"})

	if filter.EquipmentType != "" {
		query = query.Where("jobs.equipment_type = ?", filter.EquipmentType)
	}
	if filter.CustomerID != nil {
		query = query.Where("jobs.customer_id = ?", *filter.CustomerID)
	}
	if filter.Priority != nil {
		query = query.Where("jobs.priority = ?", filter.Priority.String())
	}

	var rows []queueRow
	if err := query.Order("es.received_at ASC, jobs.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query workshop queue: %w", err)
	}

	entries := make([]workshop.QueueEntry, len(rows))
	for i, row := range rows {
		entry := workshop.QueueEntry{
			JobID:         row.JobID,
			JobNumber:     row.JobNumber,
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			EquipmentType: row.EquipmentType,
			Priority:      jobvo.Priority(row.Priority),
			RepairStatus:  vo.RepairStatus(row.RepairStatus),
			TechnicianID:  row.TechnicianID,
		}
		if row.IntakeAt != nil {
			entry.IntakeAt = *row.IntakeAt
		}
		if row.EstimatedAt != nil {
			entry.EstimatedAt = *row.EstimatedAt
		}
		entries[i] = entry
	}

	return entries, nil
}
