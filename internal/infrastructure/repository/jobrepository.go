package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fieldops/internal/domain/job"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/shared/db"
)

// allowedJobOrderByFields whitelists ORDER BY fields to prevent SQL
// injection.
var allowedJobOrderByFields = map[string]bool{
	"id":            true,
	"number":        true,
	"priority":      true,
	"status":        true,
	"location_type": true,
	"customer_id":   true,
	"technician_id": true,
	"scheduled_at":  true,
	"due_date":      true,
	"created_at":    true,
	"updated_at":    true,
}

type JobRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewJobRepository(database *gorm.DB) *JobRepository {
	return &JobRepository{
		db:     database,
		mapper: mappers.NewJobMapper(),
	}
}

func (r *JobRepository) Save(ctx context.Context, j *job.Job) error {
	model := r.mapper.ToModel(j)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	return j.SetID(model.ID)
}

func (r *JobRepository) Update(ctx context.Context, j *job.Job) error {
	model := r.mapper.ToModel(j)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.JobModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}

	return nil
}

func (r *JobRepository) Delete(ctx context.Context, companyID, jobID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Scopes(db.CompanyScoped(companyID)).
		Delete(&models.JobModel{}, jobID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job not found")
	}
	return nil
}

// GetByID returns (nil, nil) when no job matches.
func (r *JobRepository) GetByID(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
	return r.getByID(ctx, companyID, jobID, false)
}

// GetByIDForUpdate loads the job with a row lock so concurrent claims of the
// same job serialize on the database. Must run inside a transaction.
func (r *JobRepository) GetByIDForUpdate(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
	return r.getByID(ctx, companyID, jobID, true)
}

func (r *JobRepository) getByID(ctx context.Context, companyID, jobID uint, forUpdate bool) (*job.Job, error) {
	var model models.JobModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Scopes(db.CompanyScoped(companyID))
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(&model, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobRepository) List(ctx context.Context, companyID uint, filter job.Filter) ([]*job.Job, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.JobModel{}).Scopes(db.CompanyScoped(companyID))

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.LocationType != nil {
		query = query.Where("location_type = ?", filter.LocationType.String())
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedJobOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var jobModels []models.JobModel
	if err := query.Find(&jobModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs := make([]*job.Job, len(jobModels))
	for i, model := range jobModels {
		j, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		jobs[i] = j
	}

	return jobs, total, nil
}

// CountActiveWorkshopJobs counts workshop jobs that are not cancelled and
// whose equipment has not yet been returned.
func (r *JobRepository) CountActiveWorkshopJobs(ctx context.Context, companyID uint) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.
		Model(&models.JobModel{}).
		Joins("JOIN equipment_statuses es ON es.job_id = jobs.id").
		Scopes(db.NotDeletedWithAlias("jobs")).
		Where("jobs.company_id = ?", companyID).
		Where("jobs.location_type = ?", "workshop").
		Where("jobs.status <> ?", "cancelled").
		Where("es.current_status <> ?", "returned").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active workshop jobs: %w", err)
	}

	return int(count), nil
}

// CountTechnicianActiveJobs counts the technician's workshop jobs with
// equipment in repair or awaiting delivery handoff, excluding completed and
// cancelled jobs.
func (r *JobRepository) CountTechnicianActiveJobs(ctx context.Context, companyID, technicianID uint) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.
		Model(&models.JobModel{}).
		Joins("JOIN equipment_statuses es ON es.job_id = jobs.id").
		Scopes(db.NotDeletedWithAlias("jobs")).
		Where("jobs.company_id = ?", companyID).
		Where("jobs.technician_id = ?", technicianID).
		Where("jobs.status NOT IN ?", []string{"completed", "cancelled"}).
		Where("es.current_status IN ?", []string{"in_repair", "repair_completed"}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count technician active jobs: %w", err)
	}

	return int(count), nil
}
