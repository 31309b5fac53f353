package workshop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fieldops/internal/domain/workshop/valueobjects"
)

func TestNewEquipmentStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	es, err := NewEquipmentStatus(42, 7, vo.StatusPendingIntake, now)
	require.NoError(t, err)
	assert.Equal(t, uint(42), es.JobID())
	assert.Equal(t, vo.StatusPendingIntake, es.CurrentStatus())
	require.NotNil(t, es.PendingIntakeAt())
	assert.Equal(t, now, *es.PendingIntakeAt())
	assert.Nil(t, es.ReceivedAt())

	_, err = NewEquipmentStatus(0, 7, vo.StatusPendingIntake, now)
	assert.Error(t, err)

	_, err = NewEquipmentStatus(42, 7, vo.RepairStatus("bogus"), now)
	assert.Error(t, err)
}

func TestEquipmentStatus_TransitionTo(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	es, err := NewEquipmentStatus(42, 7, vo.StatusReceived, now)
	require.NoError(t, err)

	later := now.Add(2 * time.Hour)
	require.NoError(t, es.TransitionTo(vo.StatusInRepair, later))
	assert.Equal(t, vo.StatusInRepair, es.CurrentStatus())
	require.NotNil(t, es.InRepairAt())
	assert.Equal(t, later, *es.InRepairAt())

	err = es.TransitionTo(vo.StatusReturned, later)
	assert.Error(t, err, "in_repair cannot jump to returned")
	assert.Equal(t, vo.StatusInRepair, es.CurrentStatus())
}

func TestEquipmentStatus_ReworkKeepsFirstEntryTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	es, err := NewEquipmentStatus(42, 7, vo.StatusReceived, now)
	require.NoError(t, err)

	firstRepair := now.Add(1 * time.Hour)
	require.NoError(t, es.TransitionTo(vo.StatusInRepair, firstRepair))

	// rework sends the equipment back to received, then into repair again
	rework := now.Add(24 * time.Hour)
	require.NoError(t, es.TransitionTo(vo.StatusReceived, rework))
	secondRepair := now.Add(26 * time.Hour)
	require.NoError(t, es.TransitionTo(vo.StatusInRepair, secondRepair))

	require.NotNil(t, es.ReceivedAt())
	assert.Equal(t, now, *es.ReceivedAt(), "received_at keeps the first entry time")
	require.NotNil(t, es.InRepairAt())
	assert.Equal(t, firstRepair, *es.InRepairAt(), "in_repair_at keeps the first entry time")
}

func TestEquipmentStatus_FullLifecycleTimestamps(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	es, err := NewEquipmentStatus(42, 7, vo.StatusPendingIntake, start)
	require.NoError(t, err)

	steps := []vo.RepairStatus{
		vo.StatusInTransit,
		vo.StatusReceived,
		vo.StatusInRepair,
		vo.StatusRepairCompleted,
		vo.StatusReadyForPickup,
		vo.StatusReturned,
	}
	for i, status := range steps {
		at := start.Add(time.Duration(i+1) * time.Hour)
		require.NoError(t, es.TransitionTo(status, at))
		require.NotNil(t, es.EnteredAt(status), "missing timestamp for %s", status)
		assert.Equal(t, at, *es.EnteredAt(status))
	}

	assert.Equal(t, vo.StatusReturned, es.CurrentStatus())
	for _, status := range vo.AllRepairStatuses() {
		err := es.TransitionTo(status, start.Add(100*time.Hour))
		assert.Error(t, err, "returned must reject transition to %s", status)
	}
}
