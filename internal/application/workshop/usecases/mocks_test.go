package usecases

import (
	"context"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/domain/job"
	"fieldops/internal/domain/notification"
	"fieldops/internal/domain/setting"
	"fieldops/internal/domain/technician"
	"fieldops/internal/domain/workshop"
	"fieldops/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

// passthroughTxRunner executes the transactional body directly; the
// repositories under test are in-memory so there is nothing to roll back.
type passthroughTxRunner struct{}

func (passthroughTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockJobRepository struct {
	SaveFunc                      func(ctx context.Context, j *job.Job) error
	UpdateFunc                    func(ctx context.Context, j *job.Job) error
	DeleteFunc                    func(ctx context.Context, companyID, jobID uint) error
	GetByIDFunc                   func(ctx context.Context, companyID, jobID uint) (*job.Job, error)
	GetByIDForUpdateFunc          func(ctx context.Context, companyID, jobID uint) (*job.Job, error)
	ListFunc                      func(ctx context.Context, companyID uint, filter job.Filter) ([]*job.Job, int64, error)
	CountActiveWorkshopJobsFunc   func(ctx context.Context, companyID uint) (int, error)
	CountTechnicianActiveJobsFunc func(ctx context.Context, companyID, technicianID uint) (int, error)
}

func (m *mockJobRepository) Save(ctx context.Context, j *job.Job) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, j)
	}
	return nil
}

func (m *mockJobRepository) Update(ctx context.Context, j *job.Job) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, j)
	}
	return nil
}

func (m *mockJobRepository) Delete(ctx context.Context, companyID, jobID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, companyID, jobID)
	}
	return nil
}

func (m *mockJobRepository) GetByID(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, companyID, jobID)
	}
	return nil, nil
}

func (m *mockJobRepository) GetByIDForUpdate(ctx context.Context, companyID, jobID uint) (*job.Job, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, companyID, jobID)
	}
	return nil, nil
}

func (m *mockJobRepository) List(ctx context.Context, companyID uint, filter job.Filter) ([]*job.Job, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, companyID, filter)
	}
	return nil, 0, nil
}

func (m *mockJobRepository) CountActiveWorkshopJobs(ctx context.Context, companyID uint) (int, error) {
	if m.CountActiveWorkshopJobsFunc != nil {
		return m.CountActiveWorkshopJobsFunc(ctx, companyID)
	}
	return 0, nil
}

func (m *mockJobRepository) CountTechnicianActiveJobs(ctx context.Context, companyID, technicianID uint) (int, error) {
	if m.CountTechnicianActiveJobsFunc != nil {
		return m.CountTechnicianActiveJobsFunc(ctx, companyID, technicianID)
	}
	return 0, nil
}

type mockPartRepository struct {
	ListByJobFunc func(ctx context.Context, jobID uint) ([]job.Part, error)
}

func (m *mockPartRepository) ListByJob(ctx context.Context, jobID uint) ([]job.Part, error) {
	if m.ListByJobFunc != nil {
		return m.ListByJobFunc(ctx, jobID)
	}
	return nil, nil
}

type mockEquipmentStatusRepository struct {
	SaveFunc                func(ctx context.Context, status *workshop.EquipmentStatus) error
	UpdateFunc              func(ctx context.Context, status *workshop.EquipmentStatus) error
	GetByJobIDFunc          func(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error)
	GetByJobIDForUpdateFunc func(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error)
	ListByStatusesFunc      func(ctx context.Context, companyID uint, statuses []workshop.RepairStatus) ([]*workshop.EquipmentStatus, error)
}

func (m *mockEquipmentStatusRepository) Save(ctx context.Context, status *workshop.EquipmentStatus) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, status)
	}
	return nil
}

func (m *mockEquipmentStatusRepository) Update(ctx context.Context, status *workshop.EquipmentStatus) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, status)
	}
	return nil
}

func (m *mockEquipmentStatusRepository) GetByJobID(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error) {
	if m.GetByJobIDFunc != nil {
		return m.GetByJobIDFunc(ctx, jobID)
	}
	return nil, nil
}

func (m *mockEquipmentStatusRepository) GetByJobIDForUpdate(ctx context.Context, jobID uint) (*workshop.EquipmentStatus, error) {
	if m.GetByJobIDForUpdateFunc != nil {
		return m.GetByJobIDForUpdateFunc(ctx, jobID)
	}
	return nil, nil
}

func (m *mockEquipmentStatusRepository) ListByStatuses(ctx context.Context, companyID uint, statuses []workshop.RepairStatus) ([]*workshop.EquipmentStatus, error) {
	if m.ListByStatusesFunc != nil {
		return m.ListByStatusesFunc(ctx, companyID, statuses)
	}
	return nil, nil
}

type mockStatusHistoryRepository struct {
	AppendFunc      func(ctx context.Context, entry *workshop.StatusHistoryEntry) error
	ListByJobIDFunc func(ctx context.Context, jobID uint) ([]*workshop.StatusHistoryEntry, error)
}

func (m *mockStatusHistoryRepository) Append(ctx context.Context, entry *workshop.StatusHistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockStatusHistoryRepository) ListByJobID(ctx context.Context, jobID uint) ([]*workshop.StatusHistoryEntry, error) {
	if m.ListByJobIDFunc != nil {
		return m.ListByJobIDFunc(ctx, jobID)
	}
	return nil, nil
}

type mockIntakeRepository struct {
	SaveFunc       func(ctx context.Context, intake *workshop.EquipmentIntake) error
	UpdateFunc     func(ctx context.Context, intake *workshop.EquipmentIntake) error
	GetByJobIDFunc func(ctx context.Context, jobID uint) (*workshop.EquipmentIntake, error)
}

func (m *mockIntakeRepository) Save(ctx context.Context, intake *workshop.EquipmentIntake) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, intake)
	}
	return nil
}

func (m *mockIntakeRepository) Update(ctx context.Context, intake *workshop.EquipmentIntake) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, intake)
	}
	return nil
}

func (m *mockIntakeRepository) GetByJobID(ctx context.Context, jobID uint) (*workshop.EquipmentIntake, error) {
	if m.GetByJobIDFunc != nil {
		return m.GetByJobIDFunc(ctx, jobID)
	}
	return nil, nil
}

type mockQueueRepository struct {
	ListQueueFunc func(ctx context.Context, companyID uint, filter workshop.QueueFilter) ([]workshop.QueueEntry, error)
}

func (m *mockQueueRepository) ListQueue(ctx context.Context, companyID uint, filter workshop.QueueFilter) ([]workshop.QueueEntry, error) {
	if m.ListQueueFunc != nil {
		return m.ListQueueFunc(ctx, companyID, filter)
	}
	return nil, nil
}

type mockSettingRepository struct {
	SaveFunc           func(ctx context.Context, settings *setting.WorkshopSettings) error
	UpdateFunc         func(ctx context.Context, settings *setting.WorkshopSettings) error
	GetByCompanyIDFunc func(ctx context.Context, companyID uint) (*setting.WorkshopSettings, error)
}

func (m *mockSettingRepository) Save(ctx context.Context, settings *setting.WorkshopSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	return nil
}

func (m *mockSettingRepository) Update(ctx context.Context, settings *setting.WorkshopSettings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settings)
	}
	return nil
}

func (m *mockSettingRepository) GetByCompanyID(ctx context.Context, companyID uint) (*setting.WorkshopSettings, error) {
	if m.GetByCompanyIDFunc != nil {
		return m.GetByCompanyIDFunc(ctx, companyID)
	}
	return nil, nil
}

type mockTechnicianRepository struct {
	GetByIDFunc    func(ctx context.Context, id uint) (*technician.Technician, error)
	ListActiveFunc func(ctx context.Context, companyID uint) ([]*technician.Technician, error)
}

func (m *mockTechnicianRepository) GetByID(ctx context.Context, id uint) (*technician.Technician, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) ListActive(ctx context.Context, companyID uint) ([]*technician.Technician, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, companyID)
	}
	return nil, nil
}

type mockDispatcher struct {
	DispatchStatusChangedFunc func(ctx context.Context, event notification.StatusChangedEvent) error
}

func (m *mockDispatcher) DispatchStatusChanged(ctx context.Context, event notification.StatusChangedEvent) error {
	if m.DispatchStatusChangedFunc != nil {
		return m.DispatchStatusChangedFunc(ctx, event)
	}
	return nil
}

type mockSnapshotCache struct {
	GetFunc func(ctx context.Context, companyID uint) (*dto.CapacitySnapshotDTO, bool)
	SetFunc func(ctx context.Context, companyID uint, snapshot *dto.CapacitySnapshotDTO)
}

func (m *mockSnapshotCache) Get(ctx context.Context, companyID uint) (*dto.CapacitySnapshotDTO, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, companyID)
	}
	return nil, false
}

func (m *mockSnapshotCache) Set(ctx context.Context, companyID uint, snapshot *dto.CapacitySnapshotDTO) {
	if m.SetFunc != nil {
		m.SetFunc(ctx, companyID, snapshot)
	}
}
