package job

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fieldops/internal/domain/job/valueobjects"
)

func newWorkshopJob(t *testing.T) *Job {
	t.Helper()

	j, err := NewJob(10, 3, "Compressor overhaul", vo.PriorityMedium, vo.LocationWorkshop)
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	tests := []struct {
		name         string
		companyID    uint
		customerID   uint
		description  string
		priority     vo.Priority
		locationType vo.LocationType
		wantErr      bool
	}{
		{"workshop job", 10, 3, "Compressor overhaul", vo.PriorityMedium, vo.LocationWorkshop, false},
		{"on-site job", 10, 3, "Boiler inspection", vo.PriorityUrgent, vo.LocationOnSite, false},
		{"missing company", 0, 3, "Compressor overhaul", vo.PriorityMedium, vo.LocationWorkshop, true},
		{"missing customer", 10, 0, "Compressor overhaul", vo.PriorityMedium, vo.LocationWorkshop, true},
		{"empty description", 10, 3, "", vo.PriorityMedium, vo.LocationWorkshop, true},
		{"description too long", 10, 3, strings.Repeat("x", 5001), vo.PriorityMedium, vo.LocationWorkshop, true},
		{"invalid priority", 10, 3, "Compressor overhaul", vo.Priority("whenever"), vo.LocationWorkshop, true},
		{"invalid location", 10, 3, "Compressor overhaul", vo.PriorityMedium, vo.LocationType("garage"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := NewJob(tt.companyID, tt.customerID, tt.description, tt.priority, tt.locationType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusPending, j.Status())
			assert.Nil(t, j.TechnicianID())
		})
	}
}

func TestJob_Assign(t *testing.T) {
	j := newWorkshopJob(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, j.Assign(7, now))
	assert.True(t, j.IsAssigned())
	assert.Equal(t, vo.StatusInProgress, j.Status())
	require.NotNil(t, j.StartedAt())
	assert.Equal(t, now, *j.StartedAt())

	// Second claim loses.
	err := j.Assign(8, now.Add(time.Minute))
	assert.Error(t, err)
	assert.Equal(t, uint(7), *j.TechnicianID())
}

func TestJob_Assign_ZeroTechnician(t *testing.T) {
	j := newWorkshopJob(t)

	err := j.Assign(0, time.Now())
	assert.Error(t, err)
	assert.False(t, j.IsAssigned())
}

func TestJob_Unassign(t *testing.T) {
	j := newWorkshopJob(t)
	require.NoError(t, j.Assign(7, time.Now()))

	j.Unassign()

	assert.False(t, j.IsAssigned())
	assert.Nil(t, j.StartedAt())
}

func TestJob_ApplyDerivedStatus(t *testing.T) {
	j := newWorkshopJob(t)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, j.Assign(7, start))

	done := start.Add(90 * time.Minute)
	require.NoError(t, j.ApplyDerivedStatus(vo.StatusCompleted, done))

	assert.Equal(t, vo.StatusCompleted, j.Status())
	require.NotNil(t, j.CompletedAt())
	assert.Equal(t, done, *j.CompletedAt())
	require.NotNil(t, j.ActualDurationMinutes())
	assert.Equal(t, 90, *j.ActualDurationMinutes())

	// Completion timestamp is stamped exactly once.
	require.NoError(t, j.ApplyDerivedStatus(vo.StatusCompleted, done.Add(time.Hour)))
	assert.Equal(t, done, *j.CompletedAt())

	err := j.ApplyDerivedStatus(vo.JobStatus("bogus"), done)
	assert.Error(t, err)
}

func TestJob_SetStatus_WorkshopJobRejected(t *testing.T) {
	j := newWorkshopJob(t)

	err := j.SetStatus(vo.StatusOnHold)
	assert.Error(t, err)
	assert.Equal(t, vo.StatusPending, j.Status())
}

func TestJob_SetStatus_OnSiteJob(t *testing.T) {
	j, err := NewJob(10, 3, "Boiler inspection", vo.PriorityHigh, vo.LocationOnSite)
	require.NoError(t, err)

	require.NoError(t, j.SetStatus(vo.StatusOnHold))
	assert.Equal(t, vo.StatusOnHold, j.Status())

	err = j.SetStatus(vo.JobStatus("bogus"))
	assert.Error(t, err)
}

func TestJob_UpdateDescription(t *testing.T) {
	j := newWorkshopJob(t)

	require.NoError(t, j.UpdateDescription("Compressor overhaul and belt replacement"))
	assert.Equal(t, "Compressor overhaul and belt replacement", j.Description())

	assert.Error(t, j.UpdateDescription(""))
	assert.Error(t, j.UpdateDescription(strings.Repeat("x", 5001)))
}

func TestJob_CanBeDeleted(t *testing.T) {
	j := newWorkshopJob(t)
	assert.True(t, j.CanBeDeleted())

	require.NoError(t, j.ApplyDerivedStatus(vo.StatusCompleted, time.Now()))
	assert.False(t, j.CanBeDeleted())
}

func TestReconstructJob(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	techID := uint(7)

	j, err := ReconstructJob(ReconstructParams{
		ID:           1,
		CompanyID:    10,
		CustomerID:   3,
		TechnicianID: &techID,
		Number:       "J-20250310-0001",
		Description:  "Compressor overhaul",
		Priority:     vo.PriorityMedium,
		Status:       vo.StatusInProgress,
		LocationType: vo.LocationWorkshop,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), j.ID())
	assert.Equal(t, "J-20250310-0001", j.Number())
	assert.True(t, j.IsAssigned())

	_, err = ReconstructJob(ReconstructParams{CompanyID: 10, CustomerID: 3})
	assert.Error(t, err, "zero ID must be rejected")
}

func TestJob_SetNumber(t *testing.T) {
	j := newWorkshopJob(t)

	require.NoError(t, j.SetNumber("J-20250310-0001"))
	assert.Equal(t, "J-20250310-0001", j.Number())

	err := j.SetNumber("J-20250310-0002")
	assert.Error(t, err, "number is immutable once set")
}
