// Package setting holds per-company workshop configuration.
package setting

import (
	"time"

	"fieldops/internal/shared/constants"
)

// WorkshopSettings controls capacity limits and intake defaults for one
// company's workshop. A company without a row falls back to
// DefaultWorkshopSettings for intake defaulting, while capacity checks
// treat the absence as unlimited.
type WorkshopSettings struct {
	id                            uint
	companyID                     uint
	maxConcurrentJobs             int
	maxJobsPerTechnician          int
	defaultEstimatedRepairHours   int
	defaultPickupDeliveryFeeCents int64
	notifyOnStatusChange          bool
	notificationTemplates         map[string]string
	createdAt                     time.Time
	updatedAt                     time.Time
}

// NewWorkshopSettings creates settings for a company with explicit limits.
func NewWorkshopSettings(companyID uint, maxConcurrent, maxPerTechnician, estimatedHours int, deliveryFeeCents int64) *WorkshopSettings {
	now := time.Now().UTC()
	return &WorkshopSettings{
		companyID:                     companyID,
		maxConcurrentJobs:             maxConcurrent,
		maxJobsPerTechnician:          maxPerTechnician,
		defaultEstimatedRepairHours:   estimatedHours,
		defaultPickupDeliveryFeeCents: deliveryFeeCents,
		notifyOnStatusChange:          true,
		createdAt:                     now,
		updatedAt:                     now,
	}
}

// DefaultWorkshopSettings returns the intake defaults used when a company
// has not configured its workshop.
func DefaultWorkshopSettings(companyID uint) *WorkshopSettings {
	return NewWorkshopSettings(
		companyID,
		constants.DefaultMaxConcurrentJobs,
		constants.DefaultMaxJobsPerTechnician,
		constants.DefaultEstimatedRepairHours,
		constants.DefaultPickupDeliveryFeeCents,
	)
}

// ReconstructParams carries persisted state back into the entity.
type ReconstructParams struct {
	ID                            uint
	CompanyID                     uint
	MaxConcurrentJobs             int
	MaxJobsPerTechnician          int
	DefaultEstimatedRepairHours   int
	DefaultPickupDeliveryFeeCents int64
	NotifyOnStatusChange          bool
	NotificationTemplates         map[string]string
	CreatedAt                     time.Time
	UpdatedAt                     time.Time
}

// ReconstructWorkshopSettings rebuilds settings from persistence.
func ReconstructWorkshopSettings(params ReconstructParams) *WorkshopSettings {
	return &WorkshopSettings{
		id:                            params.ID,
		companyID:                     params.CompanyID,
		maxConcurrentJobs:             params.MaxConcurrentJobs,
		maxJobsPerTechnician:          params.MaxJobsPerTechnician,
		defaultEstimatedRepairHours:   params.DefaultEstimatedRepairHours,
		defaultPickupDeliveryFeeCents: params.DefaultPickupDeliveryFeeCents,
		notifyOnStatusChange:          params.NotifyOnStatusChange,
		notificationTemplates:         params.NotificationTemplates,
		createdAt:                     params.CreatedAt,
		updatedAt:                     params.UpdatedAt,
	}
}

func (s *WorkshopSettings) ID() uint                         { return s.id }
func (s *WorkshopSettings) CompanyID() uint                  { return s.companyID }
func (s *WorkshopSettings) MaxConcurrentJobs() int           { return s.maxConcurrentJobs }
func (s *WorkshopSettings) MaxJobsPerTechnician() int        { return s.maxJobsPerTechnician }
func (s *WorkshopSettings) DefaultEstimatedRepairHours() int { return s.defaultEstimatedRepairHours }
func (s *WorkshopSettings) DefaultPickupDeliveryFeeCents() int64 {
	return s.defaultPickupDeliveryFeeCents
}
func (s *WorkshopSettings) NotifyOnStatusChange() bool { return s.notifyOnStatusChange }
func (s *WorkshopSettings) NotificationTemplates() map[string]string {
	return s.notificationTemplates
}
func (s *WorkshopSettings) CreatedAt() time.Time { return s.createdAt }
func (s *WorkshopSettings) UpdatedAt() time.Time { return s.updatedAt }

// SetID assigns the persistence identifier after the initial insert.
func (s *WorkshopSettings) SetID(id uint) { s.id = id }

// UpdateLimits changes the capacity limits.
func (s *WorkshopSettings) UpdateLimits(maxConcurrent, maxPerTechnician int) {
	s.maxConcurrentJobs = maxConcurrent
	s.maxJobsPerTechnician = maxPerTechnician
	s.updatedAt = time.Now().UTC()
}

// UpdateIntakeDefaults changes the values applied to new intakes.
func (s *WorkshopSettings) UpdateIntakeDefaults(estimatedHours int, deliveryFeeCents int64) {
	s.defaultEstimatedRepairHours = estimatedHours
	s.defaultPickupDeliveryFeeCents = deliveryFeeCents
	s.updatedAt = time.Now().UTC()
}

// SetNotifications toggles status-change notifications and replaces the
// per-status template overrides.
func (s *WorkshopSettings) SetNotifications(enabled bool, templates map[string]string) {
	s.notifyOnStatusChange = enabled
	s.notificationTemplates = templates
	s.updatedAt = time.Now().UTC()
}

// TemplateFor returns the company's template override for a status, if any.
func (s *WorkshopSettings) TemplateFor(status string) (string, bool) {
	if s.notificationTemplates == nil {
		return "", false
	}
	tpl, ok := s.notificationTemplates[status]
	return tpl, ok
}
