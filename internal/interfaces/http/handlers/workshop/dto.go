package workshop

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/workshop/usecases"
	"fieldops/internal/shared/errors"
)

type IntakeEquipmentRequest struct {
	ReportedIssue        string   `json:"reported_issue" binding:"required,max=5000"`
	ConditionNotes       string   `json:"condition_notes,omitempty" binding:"max=5000"`
	Accessories          []string `json:"accessories,omitempty"`
	CustomerSignatureRef string   `json:"customer_signature_ref,omitempty" binding:"max=255"`
	EstimatedRepairHours int      `json:"estimated_repair_hours,omitempty" binding:"min=0"`
}

func (r *IntakeEquipmentRequest) ToCommand(jobID, companyID, actorID uint) usecases.IntakeEquipmentCommand {
	return usecases.IntakeEquipmentCommand{
		JobID:                jobID,
		CompanyID:            companyID,
		ActorID:              actorID,
		ReportedIssue:        r.ReportedIssue,
		ConditionNotes:       r.ConditionNotes,
		Accessories:          r.Accessories,
		CustomerSignatureRef: r.CustomerSignatureRef,
		EstimatedRepairHours: r.EstimatedRepairHours,
	}
}

type ClaimJobRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes,omitempty" binding:"max=5000"`
}

type CalculateTotalRequest struct {
	Persist bool `json:"persist"`
}

type QueueRequest struct {
	EquipmentType string
	CustomerID    *uint
	Priority      string
}

func parseQueueRequest(c *gin.Context) (*QueueRequest, error) {
	req := &QueueRequest{
		EquipmentType: c.Query("equipment_type"),
		Priority:      c.Query("priority"),
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := strconv.ParseUint(customerIDStr, 10, 32)
		if err != nil || customerID == 0 {
			return nil, errors.NewValidationError("invalid customer ID")
		}
		id := uint(customerID)
		req.CustomerID = &id
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
