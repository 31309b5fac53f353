package valueobjects

import "fmt"

// JobStatus is the job's overall status. For workshop jobs it is derived from
// the equipment repair status; for on-site jobs it is set directly.
type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusAssigned   JobStatus = "assigned"
	StatusInProgress JobStatus = "in_progress"
	StatusCompleted  JobStatus = "completed"
	StatusCancelled  JobStatus = "cancelled"
	StatusOnHold     JobStatus = "on_hold"
)

var validJobStatuses = map[JobStatus]bool{
	StatusPending:    true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
	StatusOnHold:     true,
}

func (s JobStatus) String() string {
	return string(s)
}

func (s JobStatus) IsValid() bool {
	return validJobStatuses[s]
}

func (s JobStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func (s JobStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func (s JobStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func NewJobStatus(s string) (JobStatus, error) {
	js := JobStatus(s)
	if !js.IsValid() {
		return "", fmt.Errorf("invalid job status: %s", s)
	}
	return js, nil
}
