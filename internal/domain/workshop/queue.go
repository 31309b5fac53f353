package workshop

import (
	"sort"
	"time"

	"fieldops/internal/shared/biztime"

	jobvo "fieldops/internal/domain/job/valueobjects"
)

// OverdueBonus is added to the queue score of jobs whose estimated
// completion time has already passed.
const OverdueBonus = 50

// QueueEntry is one position in the workshop repair queue. It carries the
// derived ranking inputs alongside the job identity so callers can render
// the queue without re-fetching.
type QueueEntry struct {
	JobID         uint
	JobNumber     string
	CustomerID    uint
	CustomerName  string
	EquipmentType string
	Priority      jobvo.Priority
	RepairStatus  RepairStatus
	TechnicianID  *uint
	IntakeAt      time.Time
	EstimatedAt   time.Time
	DaysWaiting   int
	IsOverdue     bool
	Score         int
}

// DaysWaiting returns the number of whole days between intake and now.
func DaysWaiting(intakeAt, now time.Time) int {
	days := biztime.DaysBetween(intakeAt, now)
	if days < 0 {
		return 0
	}
	return days
}

// IsOverdue reports whether the estimated completion time has passed.
// A zero estimate never counts as overdue.
func IsOverdue(estimatedAt, now time.Time) bool {
	return !estimatedAt.IsZero() && now.After(estimatedAt)
}

// Score computes the queue ranking score: the priority weight, plus one
// point per whole day the equipment has been waiting since intake, plus a
// fixed bonus when the job is past its estimated completion.
func Score(priority jobvo.Priority, intakeAt, estimatedAt, now time.Time) int {
	score := priority.QueueWeight() + DaysWaiting(intakeAt, now)
	if IsOverdue(estimatedAt, now) {
		score += OverdueBonus
	}
	return score
}

// Rank fills the derived fields of each entry and sorts the queue by score
// descending. The sort is stable so jobs with equal scores keep their
// intake order.
func Rank(entries []QueueEntry, now time.Time) []QueueEntry {
	for i := range entries {
		entries[i].DaysWaiting = DaysWaiting(entries[i].IntakeAt, now)
		entries[i].IsOverdue = IsOverdue(entries[i].EstimatedAt, now)
		entries[i].Score = Score(entries[i].Priority, entries[i].IntakeAt, entries[i].EstimatedAt, now)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}
