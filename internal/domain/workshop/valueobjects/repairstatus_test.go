package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from RepairStatus
		to   RepairStatus
		want bool
	}{
		{name: "pending intake to in transit", from: StatusPendingIntake, to: StatusInTransit, want: true},
		{name: "pending intake directly to received", from: StatusPendingIntake, to: StatusReceived, want: true},
		{name: "pending intake cannot skip to in repair", from: StatusPendingIntake, to: StatusInRepair, want: false},
		{name: "in transit to received", from: StatusInTransit, to: StatusReceived, want: true},
		{name: "in transit cannot go back", from: StatusInTransit, to: StatusPendingIntake, want: false},
		{name: "received to in repair", from: StatusReceived, to: StatusInRepair, want: true},
		{name: "received cannot skip to completed", from: StatusReceived, to: StatusRepairCompleted, want: false},
		{name: "in repair to repair completed", from: StatusInRepair, to: StatusRepairCompleted, want: true},
		{name: "rework loop back to received", from: StatusInRepair, to: StatusReceived, want: true},
		{name: "repair completed to ready for pickup", from: StatusRepairCompleted, to: StatusReadyForPickup, want: true},
		{name: "repair completed to out for delivery", from: StatusRepairCompleted, to: StatusOutForDelivery, want: true},
		{name: "repair completed cannot reopen", from: StatusRepairCompleted, to: StatusInRepair, want: false},
		{name: "ready for pickup to returned", from: StatusReadyForPickup, to: StatusReturned, want: true},
		{name: "out for delivery to returned", from: StatusOutForDelivery, to: StatusReturned, want: true},
		{name: "pickup cannot switch to delivery", from: StatusReadyForPickup, to: StatusOutForDelivery, want: false},
		{name: "self transition rejected", from: StatusInRepair, to: StatusInRepair, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRepairStatus_ReturnedIsTerminal(t *testing.T) {
	assert.True(t, StatusReturned.IsTerminal())
	assert.Empty(t, StatusReturned.ValidTransitions())

	for _, to := range AllRepairStatuses() {
		assert.False(t, StatusReturned.CanTransitionTo(to), "returned must not transition to %s", to)
	}
}

func TestNewRepairStatus(t *testing.T) {
	status, err := NewRepairStatus("in_repair")
	assert.NoError(t, err)
	assert.Equal(t, StatusInRepair, status)

	_, err = NewRepairStatus("melted")
	assert.Error(t, err)
}

func TestRepairStatus_CountsAgainstTechnician(t *testing.T) {
	assert.True(t, StatusInRepair.CountsAgainstTechnician())
	assert.True(t, StatusRepairCompleted.CountsAgainstTechnician())
	assert.False(t, StatusReceived.CountsAgainstTechnician())
	assert.False(t, StatusReadyForPickup.CountsAgainstTechnician())
	assert.False(t, StatusReturned.CountsAgainstTechnician())
}
