package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyCompanyID = "company_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableJobs                   = "jobs"
	TableJobParts               = "job_parts"
	TableTechnicians            = "technicians"
	TableCustomers              = "customers"
	TableEquipmentIntakes       = "equipment_intakes"
	TableEquipmentStatuses      = "equipment_statuses"
	TableEquipmentStatusHistory = "equipment_status_history"
	TableWorkshopSettings       = "workshop_settings"

	// Capacity defaults used when a company has no workshop settings row.
	DefaultMaxConcurrentJobs        = 20
	DefaultMaxJobsPerTechnician     = 5
	DefaultEstimatedRepairHours     = 24
	DefaultPickupDeliveryFeeCents   = 0
	CapacityWarningThresholdPercent = 80.0

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
