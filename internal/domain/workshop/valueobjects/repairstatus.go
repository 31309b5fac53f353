package valueobjects

import "fmt"

// RepairStatus is the authoritative equipment repair state for a workshop
// job. Transitions are restricted to the edges in repairStatusTransitions;
// returned is terminal.
type RepairStatus string

const (
	StatusPendingIntake   RepairStatus = "pending_intake"
	StatusInTransit       RepairStatus = "in_transit"
	StatusReceived        RepairStatus = "received"
	StatusInRepair        RepairStatus = "in_repair"
	StatusRepairCompleted RepairStatus = "repair_completed"
	StatusReadyForPickup  RepairStatus = "ready_for_pickup"
	StatusOutForDelivery  RepairStatus = "out_for_delivery"
	StatusReturned        RepairStatus = "returned"
)

var validRepairStatuses = map[RepairStatus]bool{
	StatusPendingIntake:   true,
	StatusInTransit:       true,
	StatusReceived:        true,
	StatusInRepair:        true,
	StatusRepairCompleted: true,
	StatusReadyForPickup:  true,
	StatusOutForDelivery:  true,
	StatusReturned:        true,
}

// repairStatusTransitions is the directed edge set of the status machine.
// in_repair -> received is the rework loop.
var repairStatusTransitions = map[RepairStatus][]RepairStatus{
	StatusPendingIntake:   {StatusInTransit, StatusReceived},
	StatusInTransit:       {StatusReceived},
	StatusReceived:        {StatusInRepair},
	StatusInRepair:        {StatusRepairCompleted, StatusReceived},
	StatusRepairCompleted: {StatusReadyForPickup, StatusOutForDelivery},
	StatusReadyForPickup:  {StatusReturned},
	StatusOutForDelivery:  {StatusReturned},
	StatusReturned:        {},
}

func (s RepairStatus) String() string {
	return string(s)
}

func (s RepairStatus) IsValid() bool {
	return validRepairStatuses[s]
}

func (s RepairStatus) CanTransitionTo(newStatus RepairStatus) bool {
	allowed, ok := repairStatusTransitions[s]
	if !ok {
		return false
	}
	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

// ValidTransitions returns the allowed successor statuses.
func (s RepairStatus) ValidTransitions() []RepairStatus {
	allowed := repairStatusTransitions[s]
	out := make([]RepairStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s RepairStatus) IsTerminal() bool {
	return len(repairStatusTransitions[s]) == 0 && s.IsValid()
}

// AtOrBeyondInRepair reports whether repair work has started. The claim
// coordinator keeps technician assignment in lock-step with this.
func (s RepairStatus) AtOrBeyondInRepair() bool {
	switch s {
	case StatusInRepair, StatusRepairCompleted, StatusReadyForPickup, StatusOutForDelivery, StatusReturned:
		return true
	}
	return false
}

// CountsAgainstTechnician reports whether a job in this status occupies one
// of the technician's concurrent slots. repair_completed still counts (work
// is done but not handed off), while ready_for_pickup and out_for_delivery
// do not.
func (s RepairStatus) CountsAgainstTechnician() bool {
	return s == StatusInRepair || s == StatusRepairCompleted
}

func (s RepairStatus) IsReceived() bool {
	return s == StatusReceived
}

func (s RepairStatus) IsReturned() bool {
	return s == StatusReturned
}

func (s RepairStatus) IsInRepair() bool {
	return s == StatusInRepair
}

// AllRepairStatuses returns every valid status in lifecycle order.
func AllRepairStatuses() []RepairStatus {
	return []RepairStatus{
		StatusPendingIntake,
		StatusInTransit,
		StatusReceived,
		StatusInRepair,
		StatusRepairCompleted,
		StatusReadyForPickup,
		StatusOutForDelivery,
		StatusReturned,
	}
}

func NewRepairStatus(s string) (RepairStatus, error) {
	rs := RepairStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid repair status: %s", s)
	}
	return rs, nil
}
