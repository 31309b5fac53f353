// Package notification defines the outbound notification contract. The
// workshop raises events after commits; delivery details live in
// infrastructure.
package notification

import "context"

// StatusChangedEvent describes a repair status transition a customer or
// technician should hear about.
type StatusChangedEvent struct {
	CompanyID      uint
	JobID          uint
	JobNumber      string
	CustomerName   string
	CustomerEmail  string
	TechnicianName string
	FromStatus     string
	ToStatus       string
	Notes          string
}

// Dispatcher delivers notifications. Implementations must be safe for
// concurrent use; callers fire them after the owning transaction commits.
type Dispatcher interface {
	DispatchStatusChanged(ctx context.Context, event StatusChangedEvent) error
}
