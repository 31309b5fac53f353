package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// priorityQueueWeights feed the workshop queue score. Higher is served first.
var priorityQueueWeights = map[Priority]int{
	PriorityLow:    25,
	PriorityMedium: 50,
	PriorityHigh:   75,
	PriorityUrgent: 100,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// QueueWeight returns the base score contribution of this priority in the
// workshop queue ordering.
func (p Priority) QueueWeight() int {
	weight, ok := priorityQueueWeights[p]
	if !ok {
		return priorityQueueWeights[PriorityLow]
	}
	return weight
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

func (p Priority) IsLow() bool {
	return p == PriorityLow
}

func (p Priority) IsMedium() bool {
	return p == PriorityMedium
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}
