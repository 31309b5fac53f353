package job

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/job/usecases"
	"fieldops/internal/interfaces/http/middleware"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type JobHandler struct {
	createJobUC usecases.CreateJobExecutor
	getJobUC    usecases.GetJobExecutor
	listJobsUC  usecases.ListJobsExecutor
	updateJobUC usecases.UpdateJobExecutor
	deleteJobUC usecases.DeleteJobExecutor
	logger      logger.Interface
}

func NewJobHandler(
	createJobUC usecases.CreateJobExecutor,
	getJobUC usecases.GetJobExecutor,
	listJobsUC usecases.ListJobsExecutor,
	updateJobUC usecases.UpdateJobExecutor,
	deleteJobUC usecases.DeleteJobExecutor,
) *JobHandler {
	return &JobHandler{
		createJobUC: createJobUC,
		getJobUC:    getJobUC,
		listJobsUC:  listJobsUC,
		updateJobUC: updateJobUC,
		deleteJobUC: deleteJobUC,
		logger:      logger.NewLogger(),
	}
}

// CreateJob handles POST /jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create job", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(middleware.CompanyID(c))

	result, err := h.createJobUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Job created successfully")
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetJobQuery{
		JobID:     jobID,
		CompanyID: middleware.CompanyID(c),
	}

	result, err := h.getJobUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListJobs handles GET /jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	req, err := parseListJobsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := req.ToQuery(middleware.CompanyID(c))

	result, err := h.listJobsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Jobs, result.TotalCount, result.Page, result.PageSize)
}

// UpdateJob handles PUT /jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(jobID, middleware.CompanyID(c))

	result, err := h.updateJobUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job updated successfully", result)
}

// DeleteJob handles DELETE /jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteJobCommand{
		JobID:     jobID,
		CompanyID: middleware.CompanyID(c),
	}

	if _, err := h.deleteJobUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
