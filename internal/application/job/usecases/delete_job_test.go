package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/job"
	jobvo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/shared/errors"
)

func TestDeleteJobUseCase_Success(t *testing.T) {
	j := reconstructJob(t, 5, jobvo.StatusPending, jobvo.LocationOnSite)
	deleted := false
	jobRepo := &mockJobRepository{
		GetByIDFunc: func(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
			return j, nil
		},
		DeleteFunc: func(ctx context.Context, companyID, jobID uint) error {
			assert.Equal(t, uint(7), companyID)
			assert.Equal(t, uint(5), jobID)
			deleted = true
			return nil
		},
	}
	uc := NewDeleteJobUseCase(jobRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), DeleteJobCommand{JobID: 5, CompanyID: 7})

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, uint(5), result.JobID)
}

func TestDeleteJobUseCase_CompletedJobBlocked(t *testing.T) {
	j := reconstructJob(t, 5, jobvo.StatusCompleted, jobvo.LocationWorkshop)
	jobRepo := &mockJobRepository{
		GetByIDFunc: func(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
			return j, nil
		},
		DeleteFunc: func(ctx context.Context, companyID, jobID uint) error {
			t.Fatal("delete must not be called for a completed job")
			return nil
		},
	}
	uc := NewDeleteJobUseCase(jobRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), DeleteJobCommand{JobID: 5, CompanyID: 7})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestDeleteJobUseCase_NotFound(t *testing.T) {
	uc := NewDeleteJobUseCase(&mockJobRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), DeleteJobCommand{JobID: 404, CompanyID: 7})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
