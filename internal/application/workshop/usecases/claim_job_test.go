package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/job"
	jobvo "fieldops/internal/domain/job/valueobjects"
	"fieldops/internal/domain/setting"
	"fieldops/internal/domain/technician"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func makeWorkshopJob(t *testing.T, id, companyID uint, technicianID *uint) *job.Job {
	t.Helper()
	now := time.Now().UTC()
	status := jobvo.StatusPending
	if technicianID != nil {
		status = jobvo.StatusInProgress
	}
	j, err := job.ReconstructJob(job.ReconstructParams{
		ID:           id,
		CompanyID:    companyID,
		CustomerID:   9,
		TechnicianID: technicianID,
		Number:       "J-20250310-0001",
		Description:  "espresso machine leaks from the group head",
		Priority:     jobvo.PriorityHigh,
		Status:       status,
		LocationType: jobvo.LocationWorkshop,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return j
}

func makeEquipmentStatus(t *testing.T, jobID, companyID uint, current vo.RepairStatus) *workshop.EquipmentStatus {
	t.Helper()
	now := time.Now().UTC().Add(-time.Hour)
	es, err := workshop.ReconstructEquipmentStatus(workshop.ReconstructEquipmentStatusParams{
		ID:            jobID,
		JobID:         jobID,
		CompanyID:     companyID,
		CurrentStatus: current,
		ReceivedAt:    &now,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)
	return es
}

func makeTechnician(t *testing.T, id, companyID uint, active bool) *technician.Technician {
	t.Helper()
	now := time.Now().UTC()
	return technician.ReconstructTechnician(technician.ReconstructParams{
		ID:        id,
		CompanyID: companyID,
		Name:      "Dana Reyes",
		Email:     "dana@example.com",
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func newClaimFixture(t *testing.T, j *job.Job, es *workshop.EquipmentStatus, tech *technician.Technician, activeJobs int) (*ClaimJobUseCase, *mockStatusHistoryRepository) {
	t.Helper()
	log := noopLogger{}

	jobRepo := &mockJobRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
			if j != nil && j.ID() == jobID && j.CompanyID() == companyID {
				return j, nil
			}
			return nil, nil
		},
		CountTechnicianActiveJobsFunc: func(ctx context.Context, companyID, technicianID uint) (int, error) {
			return activeJobs, nil
		},
	}
	statusRepo := &mockEquipmentStatusRepository{
		GetByJobIDForUpdateFunc: func(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error) {
			if es != nil && es.JobID() == jobID {
				return es, nil
			}
			return nil, nil
		},
	}
	historyRepo := &mockStatusHistoryRepository{}
	techRepo := &mockTechnicianRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*technician.Technician, error) {
			if tech != nil && tech.ID() == id {
				return tech, nil
			}
			return nil, nil
		},
	}
	settings := &mockSettingRepository{}
	capacity := NewCapacityService(jobRepo, settings, log)
	machine := NewStatusMachine(jobRepo, statusRepo, historyRepo, log)

	uc := NewClaimJobUseCase(jobRepo, statusRepo, techRepo, capacity, machine, passthroughTxRunner{}, &mockDispatcher{}, log)
	return uc, historyRepo
}

func TestClaimJobUseCase_Execute_Success(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, nil)
	es := makeEquipmentStatus(t, 1, 7, vo.StatusReceived)
	tech := makeTechnician(t, 3, 7, true)

	uc, historyRepo := newClaimFixture(t, j, es, tech, 0)

	var appended []*workshop.StatusHistoryEntry
	historyRepo.AppendFunc = func(ctx context.Context, entry *workshop.StatusHistoryEntry) error {
		appended = append(appended, entry)
		return nil
	}

	result, err := uc.Execute(context.Background(), ClaimJobCommand{
		JobID: 1, TechnicianID: 3, CompanyID: 7, ActorID: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(1), result.JobID)
	assert.Equal(t, uint(3), result.TechnicianID)
	assert.Equal(t, "Dana Reyes", result.TechnicianName)
	assert.Equal(t, vo.StatusInRepair.String(), result.RepairStatus)
	assert.Equal(t, jobvo.StatusInProgress.String(), result.JobStatus)

	require.NotNil(t, j.TechnicianID())
	assert.Equal(t, uint(3), *j.TechnicianID())
	require.NotNil(t, j.StartedAt())

	require.Len(t, appended, 1, "a claim writes exactly one history row")
	assert.Equal(t, vo.StatusReceived, appended[0].FromStatus)
	assert.Equal(t, vo.StatusInRepair, appended[0].ToStatus)
}

func TestClaimJobUseCase_Execute_JobNotFound(t *testing.T) {
	uc, _ := newClaimFixture(t, nil, nil, nil, 0)

	_, err := uc.Execute(context.Background(), ClaimJobCommand{
		JobID: 99, TechnicianID: 3, CompanyID: 7, ActorID: 3,
	})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestClaimJobUseCase_Execute_AlreadyAssigned(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, uintPtr(5))
	es := makeEquipmentStatus(t, 1, 7, vo.StatusReceived)
	tech := makeTechnician(t, 3, 7, true)

	uc, _ := newClaimFixture(t, j, es, tech, 0)

	_, err := uc.Execute(context.Background(), ClaimJobCommand{
		JobID: 1, TechnicianID: 3, CompanyID: 7, ActorID: 3,
	})

	assert.True(t, errors.IsAlreadyAssignedError(err))
	assert.Equal(t, uint(5), *j.TechnicianID(), "losing claim must not change the assignment")
}

func TestClaimJobUseCase_Execute_InvalidState(t *testing.T) {
	tests := []struct {
		name   string
		status vo.RepairStatus
	}{
		{name: "still in transit", status: vo.StatusInTransit},
		{name: "already in repair", status: vo.StatusInRepair},
		{name: "already returned", status: vo.StatusReturned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := makeWorkshopJob(t, 1, 7, nil)
			es := makeEquipmentStatus(t, 1, 7, tt.status)
			tech := makeTechnician(t, 3, 7, true)

			uc, _ := newClaimFixture(t, j, es, tech, 0)

			_, err := uc.Execute(context.Background(), ClaimJobCommand{
				JobID: 1, TechnicianID: 3, CompanyID: 7, ActorID: 3,
			})

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeInvalidState, appErr.Type)
			assert.Nil(t, j.TechnicianID())
		})
	}
}

func TestClaimJobUseCase_Execute_TechnicianWrongCompany(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, nil)
	es := makeEquipmentStatus(t, 1, 7, vo.StatusReceived)
	tech := makeTechnician(t, 3, 8, true)

	uc, _ := newClaimFixture(t, j, es, tech, 0)

	_, err := uc.Execute(context.Background(), ClaimJobCommand{
		JobID: 1, TechnicianID: 3, CompanyID: 7, ActorID: 3,
	})

	assert.True(t, errors.IsNotFoundError(err))
	assert.Nil(t, j.TechnicianID())
}

func TestClaimJobUseCase_Execute_CapacityExceeded(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, nil)
	es := makeEquipmentStatus(t, 1, 7, vo.StatusReceived)
	tech := makeTechnician(t, 3, 7, true)

	uc, historyRepo := newClaimFixture(t, j, es, tech, 5)

	// settings limit the technician to 5 concurrent jobs
	uc.capacity = NewCapacityService(
		&mockJobRepository{
			CountTechnicianActiveJobsFunc: func(ctx context.Context, companyID, technicianID uint) (int, error) {
				return 5, nil
			},
		},
		&mockSettingRepository{
			GetByCompanyIDFunc: func(ctx context.Context, companyID uint) (*setting.WorkshopSettings, error) {
				return setting.NewWorkshopSettings(companyID, 20, 5, 24, 0), nil
			},
		},
		noopLogger{},
	)

	var appended int
	historyRepo.AppendFunc = func(ctx context.Context, entry *workshop.StatusHistoryEntry) error {
		appended++
		return nil
	}

	_, err := uc.Execute(context.Background(), ClaimJobCommand{
		JobID: 1, TechnicianID: 3, CompanyID: 7, ActorID: 3,
	})

	require.Error(t, err)
	assert.True(t, errors.IsCapacityExceededError(err))
	appErr := errors.GetAppError(err)
	assert.Contains(t, appErr.Details, "current: 5")
	assert.Contains(t, appErr.Details, "max: 5")

	assert.Nil(t, j.TechnicianID(), "rejected claim leaves the job unassigned")
	assert.Equal(t, vo.StatusReceived, es.CurrentStatus(), "rejected claim leaves the status unchanged")
	assert.Zero(t, appended)
}

func TestClaimJobUseCase_Execute_UnlimitedWithoutSettings(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, nil)
	es := makeEquipmentStatus(t, 1, 7, vo.StatusReceived)
	tech := makeTechnician(t, 3, 7, true)

	// 50 active jobs, but no settings row means no limit
	uc, _ := newClaimFixture(t, j, es, tech, 50)

	result, err := uc.Execute(context.Background(), ClaimJobCommand{
		JobID: 1, TechnicianID: 3, CompanyID: 7, ActorID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.TechnicianID)
}

func TestClaimJobUseCase_Execute_ValidationErrors(t *testing.T) {
	uc, _ := newClaimFixture(t, nil, nil, nil, 0)

	tests := []struct {
		name string
		cmd  ClaimJobCommand
	}{
		{name: "missing job id", cmd: ClaimJobCommand{TechnicianID: 3, CompanyID: 7, ActorID: 3}},
		{name: "missing technician id", cmd: ClaimJobCommand{JobID: 1, CompanyID: 7, ActorID: 3}},
		{name: "missing company id", cmd: ClaimJobCommand{JobID: 1, TechnicianID: 3, ActorID: 3}},
		{name: "missing actor id", cmd: ClaimJobCommand{JobID: 1, TechnicianID: 3, CompanyID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
