package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/job"
	jobvo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/shared/errors"
)

func makeCompletedJob(t *testing.T, id, companyID uint, locationType jobvo.LocationType, status jobvo.JobStatus) *job.Job {
	t.Helper()
	now := time.Now().UTC()
	j, err := job.ReconstructJob(job.ReconstructParams{
		ID:           id,
		CompanyID:    companyID,
		CustomerID:   9,
		Number:       "J-20250310-0002",
		Description:  "generator service",
		Priority:     jobvo.PriorityMedium,
		Status:       status,
		LocationType: locationType,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return j
}

func newReadinessFixture(j *job.Job, es *workshop.EquipmentStatus) *InvoiceReadinessUseCase {
	jobRepo := &mockJobRepository{
		GetByIDFunc: func(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
			if j != nil && j.ID() == jobID && j.CompanyID() == companyID {
				return j, nil
			}
			return nil, nil
		},
	}
	statusRepo := &mockEquipmentStatusRepository{
		GetByJobIDFunc: func(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error) {
			if es != nil && es.JobID() == jobID {
				return es, nil
			}
			return nil, nil
		},
	}
	return NewInvoiceReadinessUseCase(jobRepo, statusRepo, noopLogger{})
}

func TestInvoiceReadinessUseCase_Execute(t *testing.T) {
	tests := []struct {
		name       string
		location   jobvo.LocationType
		jobStatus  jobvo.JobStatus
		repair     vo.RepairStatus
		wantReady  bool
		wantReason string
	}{
		{
			name:       "workshop job completed but equipment only ready for pickup",
			location:   jobvo.LocationWorkshop,
			jobStatus:  jobvo.StatusCompleted,
			repair:     vo.StatusReadyForPickup,
			wantReady:  false,
			wantReason: "equipment has not been returned to the customer",
		},
		{
			name:      "workshop job completed and equipment returned",
			location:  jobvo.LocationWorkshop,
			jobStatus: jobvo.StatusCompleted,
			repair:    vo.StatusReturned,
			wantReady: true,
		},
		{
			name:       "workshop job still in progress",
			location:   jobvo.LocationWorkshop,
			jobStatus:  jobvo.StatusInProgress,
			repair:     vo.StatusInRepair,
			wantReady:  false,
			wantReason: "job is not completed",
		},
		{
			name:      "on-site job needs only completion",
			location:  jobvo.LocationOnSite,
			jobStatus: jobvo.StatusCompleted,
			wantReady: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := makeCompletedJob(t, 1, 7, tt.location, tt.jobStatus)
			var es *workshop.EquipmentStatus
			if tt.location.IsWorkshop() {
				es = makeEquipmentStatus(t, 1, 7, tt.repair)
			}

			uc := newReadinessFixture(j, es)

			result, err := uc.Execute(context.Background(), InvoiceReadinessQuery{JobID: 1, CompanyID: 7})

			require.NoError(t, err)
			assert.Equal(t, tt.wantReady, result.Ready)
			assert.Equal(t, tt.wantReason, result.Reason)
		})
	}
}

func TestInvoiceReadinessUseCase_Execute_JobNotFound(t *testing.T) {
	uc := newReadinessFixture(nil, nil)

	_, err := uc.Execute(context.Background(), InvoiceReadinessQuery{JobID: 5, CompanyID: 7})

	assert.True(t, errors.IsNotFoundError(err))
}
