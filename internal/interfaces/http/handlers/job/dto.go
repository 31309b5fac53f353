package job

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/job/usecases"
	"fieldops/internal/shared/errors"
)

type CreateJobRequest struct {
	CustomerID    uint       `json:"customer_id" binding:"required"`
	Description   string     `json:"description" binding:"required,max=5000"`
	Priority      string     `json:"priority" binding:"required"`
	LocationType  string     `json:"location_type" binding:"required"`
	EquipmentID   *uint      `json:"equipment_id,omitempty"`
	EquipmentType string     `json:"equipment_type,omitempty" binding:"max=100"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`

	EstimatedDurationMinutes int   `json:"estimated_duration_minutes,omitempty" binding:"min=0"`
	PickupDeliveryFeeCents   int64 `json:"pickup_delivery_fee_cents,omitempty" binding:"min=0"`
}

func (r *CreateJobRequest) ToCommand(companyID uint) usecases.CreateJobCommand {
	return usecases.CreateJobCommand{
		CompanyID:                companyID,
		CustomerID:               r.CustomerID,
		Description:              r.Description,
		Priority:                 r.Priority,
		LocationType:             r.LocationType,
		EquipmentID:              r.EquipmentID,
		EquipmentType:            r.EquipmentType,
		ScheduledAt:              r.ScheduledAt,
		DueDate:                  r.DueDate,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		PickupDeliveryFeeCents:   r.PickupDeliveryFeeCents,
	}
}

type UpdateJobRequest struct {
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	EstimatedDurationMinutes *int `json:"estimated_duration_minutes,omitempty"`
}

func (r *UpdateJobRequest) ToCommand(jobID, companyID uint) usecases.UpdateJobCommand {
	return usecases.UpdateJobCommand{
		JobID:                    jobID,
		CompanyID:                companyID,
		Description:              r.Description,
		Priority:                 r.Priority,
		ScheduledAt:              r.ScheduledAt,
		DueDate:                  r.DueDate,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
	}
}

type ListJobsRequest struct {
	Page         int
	PageSize     int
	Status       *string
	Priority     *string
	LocationType *string
	CustomerID   *uint
	TechnicianID *uint
	SortBy       string
	SortOrder    string
}

func (r *ListJobsRequest) ToQuery(companyID uint) usecases.ListJobsQuery {
	return usecases.ListJobsQuery{
		CompanyID:    companyID,
		Status:       r.Status,
		Priority:     r.Priority,
		LocationType: r.LocationType,
		CustomerID:   r.CustomerID,
		TechnicianID: r.TechnicianID,
		Page:         r.Page,
		PageSize:     r.PageSize,
		SortBy:       r.SortBy,
		SortOrder:    r.SortOrder,
	}
}

func parseListJobsRequest(c *gin.Context) (*ListJobsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListJobsRequest{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}

	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}

	if locationType := c.Query("location_type"); locationType != "" {
		req.LocationType = &locationType
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := strconv.ParseUint(customerIDStr, 10, 32)
		if err != nil || customerID == 0 {
			return nil, errors.NewValidationError("invalid customer ID")
		}
		id := uint(customerID)
		req.CustomerID = &id
	}

	if technicianIDStr := c.Query("technician_id"); technicianIDStr != "" {
		technicianID, err := strconv.ParseUint(technicianIDStr, 10, 32)
		if err != nil || technicianID == 0 {
			return nil, errors.NewValidationError("invalid technician ID")
		}
		id := uint(technicianID)
		req.TechnicianID = &id
	}

	return req, nil
}

func parseJobID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid job ID")
	}
	return uint(id), nil
}
