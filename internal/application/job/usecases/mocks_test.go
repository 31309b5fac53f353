package usecases

import (
	"context"

	"fieldops/internal/domain/job"
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

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "J-20250310-0001", nil
}
