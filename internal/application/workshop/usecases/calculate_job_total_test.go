package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/job"
	jobvo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/shared/errors"
)

func makeBillableJob(t *testing.T, id uint, locationType jobvo.LocationType, deliveryFeeCents int64) *job.Job {
	t.Helper()
	now := time.Now().UTC()
	j, err := job.ReconstructJob(job.ReconstructParams{
		ID:                     id,
		CompanyID:              7,
		CustomerID:             9,
		Number:                 "J-20250310-0003",
		Description:            "pressure washer overhaul",
		Priority:               jobvo.PriorityMedium,
		Status:                 jobvo.StatusCompleted,
		LocationType:           locationType,
		PickupDeliveryFeeCents: deliveryFeeCents,
		CreatedAt:              now,
		UpdatedAt:              now,
	})
	require.NoError(t, err)
	return j
}

func TestCalculateJobTotalUseCase_Execute_WorkshopJobIncludesDeliveryFee(t *testing.T) {
	j := makeBillableJob(t, 1, jobvo.LocationWorkshop, 1500)

	jobRepo := &mockJobRepository{
		GetByIDFunc: func(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
			return j, nil
		},
	}
	partRepo := &mockPartRepository{
		ListByJobFunc: func(ctx context.Context, jobID uint) ([]job.Part, error) {
			return []job.Part{
				{JobID: jobID, Name: "pump", Quantity: 2, UnitPriceCents: 1000},
				{JobID: jobID, Name: "gasket", Quantity: 1, UnitPriceCents: 500},
			}, nil
		},
	}

	uc := NewCalculateJobTotalUseCase(jobRepo, partRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), CalculateJobTotalCommand{JobID: 1, CompanyID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(2500), result.PartsTotalCents)
	assert.Equal(t, int64(1500), result.DeliveryFeeCents)
	assert.Equal(t, int64(5000), result.TotalCents)
	assert.Equal(t, "$50.00", result.TotalFormatted)
}

func TestCalculateJobTotalUseCase_Execute_OnSiteJobIgnoresDeliveryFee(t *testing.T) {
	j := makeBillableJob(t, 1, jobvo.LocationOnSite, 1500)

	jobRepo := &mockJobRepository{
		GetByIDFunc: func(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
			return j, nil
		},
	}
	partRepo := &mockPartRepository{
		ListByJobFunc: func(ctx context.Context, jobID uint) ([]job.Part, error) {
			return []job.Part{
				{JobID: jobID, Name: "pump", Quantity: 2, UnitPriceCents: 1000},
				{JobID: jobID, Name: "gasket", Quantity: 1, UnitPriceCents: 500},
			}, nil
		},
	}

	uc := NewCalculateJobTotalUseCase(jobRepo, partRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), CalculateJobTotalCommand{JobID: 1, CompanyID: 7})

	require.NoError(t, err)
	assert.Zero(t, result.DeliveryFeeCents)
	assert.Equal(t, int64(2500), result.TotalCents)
}

func TestCalculateJobTotalUseCase_Execute_PersistsTotal(t *testing.T) {
	j := makeBillableJob(t, 1, jobvo.LocationWorkshop, 1500)

	var updated bool
	jobRepo := &mockJobRepository{
		GetByIDFunc: func(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
			return j, nil
		},
		UpdateFunc: func(ctx context.Context, j *job.Job) error {
			updated = true
			return nil
		},
	}
	partRepo := &mockPartRepository{}

	uc := NewCalculateJobTotalUseCase(jobRepo, partRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), CalculateJobTotalCommand{JobID: 1, CompanyID: 7, Persist: true})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, int64(1500), result.TotalCents)
	assert.Equal(t, int64(1500), j.TotalCostCents())
}

func TestCalculateJobTotalUseCase_Execute_JobNotFound(t *testing.T) {
	uc := NewCalculateJobTotalUseCase(&mockJobRepository{}, &mockPartRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), CalculateJobTotalCommand{JobID: 9, CompanyID: 7})

	assert.True(t, errors.IsNotFoundError(err))
}
