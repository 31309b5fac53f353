package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/job"
	"fieldops/internal/domain/setting"
	"fieldops/internal/domain/workshop"
	vo "fieldops/internal/domain/workshop/valueobjects"
	"fieldops/internal/shared/errors"
)

type intakeFixture struct {
	uc          *IntakeEquipmentUseCase
	statusRepo  *mockEquipmentStatusRepository
	historyRepo *mockStatusHistoryRepository
	intakeRepo  *mockIntakeRepository
	savedStatus **workshop.EquipmentStatus
}

func newIntakeFixture(t *testing.T, j *job.Job, es *workshop.EquipmentStatus, settings *setting.WorkshopSettings, activeJobs int) *intakeFixture {
	t.Helper()
	log := noopLogger{}

	current := es
	savedStatus := &current

	jobRepo := &mockJobRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
			if j != nil && j.ID() == jobID && j.CompanyID() == companyID {
				return j, nil
			}
			return nil, nil
		},
		CountActiveWorkshopJobsFunc: func(ctx context.Context, companyID uint) (int, error) {
			return activeJobs, nil
		},
	}
	statusRepo := &mockEquipmentStatusRepository{
		GetByJobIDForUpdateFunc: func(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error) {
			if *savedStatus != nil && (*savedStatus).JobID() == jobID {
				return *savedStatus, nil
			}
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, status *workshop.EquipmentStatus) error {
			_ = status.SetID(status.JobID())
			*savedStatus = status
			return nil
		},
	}
	historyRepo := &mockStatusHistoryRepository{}
	intakeRepo := &mockIntakeRepository{
		SaveFunc: func(ctx context.Context, intake *workshop.EquipmentIntake) error {
			return intake.SetID(100)
		},
	}
	settingRepo := &mockSettingRepository{
		GetByCompanyIDFunc: func(ctx context.Context, companyID uint) (*setting.WorkshopSettings, error) {
			return settings, nil
		},
	}

	capacity := NewCapacityService(jobRepo, settingRepo, log)
	machine := NewStatusMachine(jobRepo, statusRepo, historyRepo, log)

	uc := NewIntakeEquipmentUseCase(jobRepo, statusRepo, historyRepo, intakeRepo, settingRepo, capacity, machine, passthroughTxRunner{}, log)

	return &intakeFixture{
		uc:          uc,
		statusRepo:  statusRepo,
		historyRepo: historyRepo,
		intakeRepo:  intakeRepo,
		savedStatus: savedStatus,
	}
}

func TestIntakeEquipmentUseCase_Execute_WalkInCreatesReceivedRow(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, nil)

	fx := newIntakeFixture(t, j, nil, nil, 0)

	var appended []*workshop.StatusHistoryEntry
	fx.historyRepo.AppendFunc = func(ctx context.Context, entry *workshop.StatusHistoryEntry) error {
		appended = append(appended, entry)
		return nil
	}

	result, err := fx.uc.Execute(context.Background(), IntakeEquipmentCommand{
		JobID: 1, CompanyID: 7, ActorID: 3,
		ReportedIssue:        "does not power on",
		EstimatedRepairHours: 8,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusReceived.String(), result.RepairStatus)
	assert.Equal(t, 8, result.EstimatedRepairHours)
	require.NotNil(t, result.EstimatedCompletionAt)

	require.NotNil(t, *fx.savedStatus)
	assert.Equal(t, vo.StatusReceived, (*fx.savedStatus).CurrentStatus())

	require.Len(t, appended, 1)
	assert.Equal(t, vo.RepairStatus(""), appended[0].FromStatus, "initial history row has no from_status")
	assert.Equal(t, vo.StatusReceived, appended[0].ToStatus)
}

func TestIntakeEquipmentUseCase_Execute_ShippedEquipmentTransitions(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, nil)
	es := makeEquipmentStatus(t, 1, 7, vo.StatusInTransit)

	fx := newIntakeFixture(t, j, es, nil, 0)

	var appended []*workshop.StatusHistoryEntry
	fx.historyRepo.AppendFunc = func(ctx context.Context, entry *workshop.StatusHistoryEntry) error {
		appended = append(appended, entry)
		return nil
	}

	result, err := fx.uc.Execute(context.Background(), IntakeEquipmentCommand{
		JobID: 1, CompanyID: 7, ActorID: 3,
		ReportedIssue:        "screen cracked in shipping",
		EstimatedRepairHours: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusReceived.String(), result.RepairStatus)
	assert.Equal(t, vo.StatusReceived, es.CurrentStatus())

	require.Len(t, appended, 1)
	assert.Equal(t, vo.StatusInTransit, appended[0].FromStatus)
	assert.Equal(t, vo.StatusReceived, appended[0].ToStatus)
}

func TestIntakeEquipmentUseCase_Execute_DefaultsEstimatedHours(t *testing.T) {
	tests := []struct {
		name      string
		settings  *setting.WorkshopSettings
		wantHours int
	}{
		{
			name:      "company settings provide the default",
			settings:  setting.NewWorkshopSettings(7, 20, 5, 48, 0),
			wantHours: 48,
		},
		{
			name:      "system default when no settings row",
			settings:  nil,
			wantHours: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := makeWorkshopJob(t, 1, 7, nil)
			fx := newIntakeFixture(t, j, nil, tt.settings, 0)

			result, err := fx.uc.Execute(context.Background(), IntakeEquipmentCommand{
				JobID: 1, CompanyID: 7, ActorID: 3,
				ReportedIssue: "intermittent fault",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, result.EstimatedRepairHours)
		})
	}
}

func TestIntakeEquipmentUseCase_Execute_CapacityExceeded(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, nil)
	settings := setting.NewWorkshopSettings(7, 20, 5, 24, 0)

	fx := newIntakeFixture(t, j, nil, settings, 20)

	_, err := fx.uc.Execute(context.Background(), IntakeEquipmentCommand{
		JobID: 1, CompanyID: 7, ActorID: 3,
		ReportedIssue: "worn drive belt",
	})

	require.Error(t, err)
	assert.True(t, errors.IsCapacityExceededError(err))
	assert.Nil(t, *fx.savedStatus, "rejected intake writes nothing")
}

func TestIntakeEquipmentUseCase_Execute_DuplicateIntake(t *testing.T) {
	j := makeWorkshopJob(t, 1, 7, nil)
	fx := newIntakeFixture(t, j, nil, nil, 0)

	fx.intakeRepo.GetByJobIDFunc = func(ctx context.Context, jobID uint) (*workshop.EquipmentIntake, error) {
		intake, err := workshop.NewEquipmentIntake(jobID, 7, "prior issue", "", nil, "", 8, time.Now().UTC())
		require.NoError(t, err)
		return intake, nil
	}

	_, err := fx.uc.Execute(context.Background(), IntakeEquipmentCommand{
		JobID: 1, CompanyID: 7, ActorID: 3,
		ReportedIssue: "does not power on",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestIntakeEquipmentUseCase_Execute_NonWorkshopJob(t *testing.T) {
	fx := newIntakeFixture(t, nil, nil, nil, 0)

	_, err := fx.uc.Execute(context.Background(), IntakeEquipmentCommand{
		JobID: 1, CompanyID: 7, ActorID: 3,
		ReportedIssue: "leaks oil",
	})

	assert.True(t, errors.IsNotFoundError(err))
}
