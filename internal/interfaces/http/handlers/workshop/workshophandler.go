package workshop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/workshop/usecases"
	"fieldops/internal/interfaces/http/middleware"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

// WorkshopHandler exposes the depot repair lifecycle over HTTP. Company
// scope always comes from the authenticated token.
type WorkshopHandler struct {
	getQueueUC         usecases.GetQueueExecutor
	getCapacityUC      usecases.GetCapacityExecutor
	intakeUC           usecases.IntakeEquipmentExecutor
	claimUC            usecases.ClaimJobExecutor
	transitionUC       usecases.TransitionStatusExecutor
	statusHistoryUC    usecases.GetStatusHistoryExecutor
	invoiceReadinessUC usecases.InvoiceReadinessExecutor
	calculateTotalUC   usecases.CalculateJobTotalExecutor
	logger             logger.Interface
}

func NewWorkshopHandler(
	getQueueUC usecases.GetQueueExecutor,
	getCapacityUC usecases.GetCapacityExecutor,
	intakeUC usecases.IntakeEquipmentExecutor,
	claimUC usecases.ClaimJobExecutor,
	transitionUC usecases.TransitionStatusExecutor,
	statusHistoryUC usecases.GetStatusHistoryExecutor,
	invoiceReadinessUC usecases.InvoiceReadinessExecutor,
	calculateTotalUC usecases.CalculateJobTotalExecutor,
) *WorkshopHandler {
	return &WorkshopHandler{
		getQueueUC:         getQueueUC,
		getCapacityUC:      getCapacityUC,
		intakeUC:           intakeUC,
		claimUC:            claimUC,
		transitionUC:       transitionUC,
		statusHistoryUC:    statusHistoryUC,
		invoiceReadinessUC: invoiceReadinessUC,
		calculateTotalUC:   calculateTotalUC,
		logger:             logger.NewLogger(),
	}
}

// GetQueue handles GET /workshop/queue
func (h *WorkshopHandler) GetQueue(c *gin.Context) {
	req, err := parseQueueRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetQueueQuery{
		CompanyID:     middleware.CompanyID(c),
		EquipmentType: req.EquipmentType,
		CustomerID:    req.CustomerID,
		Priority:      req.Priority,
	}

	result, err := h.getQueueUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCapacity handles GET /workshop/capacity
func (h *WorkshopHandler) GetCapacity(c *gin.Context) {
	query := usecases.GetCapacityQuery{
		CompanyID: middleware.CompanyID(c),
	}

	result, err := h.getCapacityUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// IntakeEquipment handles POST /workshop/jobs/:id/intake
func (h *WorkshopHandler) IntakeEquipment(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req IntakeEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for equipment intake", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(jobID, middleware.CompanyID(c), middleware.UserID(c))

	result, err := h.intakeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Equipment received successfully")
}

// ClaimJob handles POST /workshop/jobs/:id/claim
func (h *WorkshopHandler) ClaimJob(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ClaimJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ClaimJobCommand{
		JobID:        jobID,
		TechnicianID: req.TechnicianID,
		CompanyID:    middleware.CompanyID(c),
		ActorID:      middleware.UserID(c),
	}

	result, err := h.claimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job claimed successfully", result)
}

// TransitionStatus handles PATCH /workshop/jobs/:id/status
func (h *WorkshopHandler) TransitionStatus(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.TransitionStatusCommand{
		JobID:     jobID,
		CompanyID: middleware.CompanyID(c),
		ActorID:   middleware.UserID(c),
		NewStatus: req.Status,
		Notes:     req.Notes,
	}

	result, err := h.transitionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// GetStatusHistory handles GET /workshop/jobs/:id/status-history
func (h *WorkshopHandler) GetStatusHistory(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetStatusHistoryQuery{
		JobID:     jobID,
		CompanyID: middleware.CompanyID(c),
	}

	result, err := h.statusHistoryUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetInvoiceReadiness handles GET /workshop/jobs/:id/invoice-readiness
func (h *WorkshopHandler) GetInvoiceReadiness(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.InvoiceReadinessQuery{
		JobID:     jobID,
		CompanyID: middleware.CompanyID(c),
	}

	result, err := h.invoiceReadinessUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CalculateTotal handles POST /workshop/jobs/:id/total
func (h *WorkshopHandler) CalculateTotal(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CalculateTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CalculateJobTotalCommand{
		JobID:     jobID,
		CompanyID: middleware.CompanyID(c),
		Persist:   req.Persist,
	}

	result, err := h.calculateTotalUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job total calculated successfully", result)
}
