package usecases

import (
	"context"

	"fieldops/internal/domain/job"
	"fieldops/internal/domain/setting"
	"fieldops/internal/shared/logger"
)

// CapacityCheck is the outcome of one admission check. Unlimited means the
// company has no settings row, which disables the limit entirely.
type CapacityCheck struct {
	Allowed   bool
	Unlimited bool
	Current   int
	Max       int
}

// CapacityService runs the two independent admission checks. The checks are
// advisory when called from read endpoints; the claim coordinator re-runs
// the technician check inside its transaction, which makes the recount
// authoritative there.
type CapacityService struct {
	jobRepo     job.Repository
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewCapacityService(
	jobRepo job.Repository,
	settingRepo setting.Repository,
	logger logger.Interface,
) *CapacityService {
	return &CapacityService{
		jobRepo:     jobRepo,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// CheckWorkshopCapacity counts workshop jobs that are not cancelled and
// whose equipment has not been returned, against max_concurrent_jobs.
func (s *CapacityService) CheckWorkshopCapacity(ctx context.Context, companyID uint) (*CapacityCheck, error) {
	settings, err := s.settingRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	current, err := s.jobRepo.CountActiveWorkshopJobs(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		return &CapacityCheck{Allowed: true, Unlimited: true, Current: current}, nil
	}

	maxJobs := settings.MaxConcurrentJobs()
	return &CapacityCheck{
		Allowed: current < maxJobs,
		Current: current,
		Max:     maxJobs,
	}, nil
}

// CheckTechnicianCapacity counts the technician's workshop jobs with
// equipment in repair or repair-completed, against max_jobs_per_technician.
func (s *CapacityService) CheckTechnicianCapacity(ctx context.Context, companyID, technicianID uint) (*CapacityCheck, error) {
	settings, err := s.settingRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	current, err := s.jobRepo.CountTechnicianActiveJobs(ctx, companyID, technicianID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		return &CapacityCheck{Allowed: true, Unlimited: true, Current: current}, nil
	}

	maxJobs := settings.MaxJobsPerTechnician()
	return &CapacityCheck{
		Allowed: current < maxJobs,
		Current: current,
		Max:     maxJobs,
	}, nil
}
