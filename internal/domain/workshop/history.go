package workshop

import (
	"fmt"
	"time"

	vo "fieldops/internal/domain/workshop/valueobjects"
)

// StatusHistoryEntry is one append-only audit row: a single edge traversal of
// the equipment status machine. Rows are write-once; the initial entry has an
// empty FromStatus.
type StatusHistoryEntry struct {
	ID                uint
	EquipmentStatusID uint
	JobID             uint
	FromStatus        vo.RepairStatus
	ToStatus          vo.RepairStatus
	ActorID           uint
	Notes             string
	CreatedAt         time.Time
}

// NewStatusHistoryEntry records a transition. fromStatus is empty for the row
// created when the status record itself is created.
func NewStatusHistoryEntry(
	equipmentStatusID uint,
	jobID uint,
	fromStatus vo.RepairStatus,
	toStatus vo.RepairStatus,
	actorID uint,
	notes string,
	now time.Time,
) (*StatusHistoryEntry, error) {
	if equipmentStatusID == 0 {
		return nil, fmt.Errorf("equipment status ID is required")
	}
	if jobID == 0 {
		return nil, fmt.Errorf("job ID is required")
	}
	if !toStatus.IsValid() {
		return nil, fmt.Errorf("invalid to_status: %s", toStatus)
	}
	if fromStatus != "" && !fromStatus.IsValid() {
		return nil, fmt.Errorf("invalid from_status: %s", fromStatus)
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}

	return &StatusHistoryEntry{
		EquipmentStatusID: equipmentStatusID,
		JobID:             jobID,
		FromStatus:        fromStatus,
		ToStatus:          toStatus,
		ActorID:           actorID,
		Notes:             notes,
		CreatedAt:         now,
	}, nil
}
