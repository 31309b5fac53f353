package valueobjects

import jobvo "fieldops/internal/domain/job/valueobjects"

// DeriveJobStatus maps the equipment repair status to the job's overall
// status. Pure; the status machine writes the result in the same unit as the
// equipment status change.
func DeriveJobStatus(s RepairStatus) jobvo.JobStatus {
	switch s {
	case StatusReceived:
		return jobvo.StatusAssigned
	case StatusInRepair:
		return jobvo.StatusInProgress
	case StatusRepairCompleted, StatusReadyForPickup, StatusOutForDelivery, StatusReturned:
		return jobvo.StatusCompleted
	default:
		return jobvo.StatusPending
	}
}
