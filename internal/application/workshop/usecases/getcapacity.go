package usecases

import (
	"context"
	"math"
	"sort"
	"time"

	"fieldops/internal/application/workshop/dto"
	"fieldops/internal/domain/job"
	"fieldops/internal/domain/setting"
	"fieldops/internal/domain/technician"
	"fieldops/internal/shared/constants"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

// SnapshotCache holds short-lived capacity snapshots. The snapshot is
// advisory; admission decisions never read from here.
type SnapshotCache interface {
	Get(ctx context.Context, companyID uint) (*dto.CapacitySnapshotDTO, bool)
	Set(ctx context.Context, companyID uint, snapshot *dto.CapacitySnapshotDTO)
}

type GetCapacityQuery struct {
	CompanyID uint
}

type GetCapacityUseCase struct {
	jobRepo     job.Repository
	techRepo    technician.Repository
	settingRepo setting.Repository
	cache       SnapshotCache
	logger      logger.Interface
}

func NewGetCapacityUseCase(
	jobRepo job.Repository,
	techRepo technician.Repository,
	settingRepo setting.Repository,
	cache SnapshotCache,
	logger logger.Interface,
) *GetCapacityUseCase {
	return &GetCapacityUseCase{
		jobRepo:     jobRepo,
		techRepo:    techRepo,
		settingRepo: settingRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *GetCapacityUseCase) Execute(ctx context.Context, query GetCapacityQuery) (*dto.CapacitySnapshotDTO, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	if uc.cache != nil {
		if snapshot, ok := uc.cache.Get(ctx, query.CompanyID); ok {
			return snapshot, nil
		}
	}

	settings, err := uc.settingRepo.GetByCompanyID(ctx, query.CompanyID)
	if err != nil {
		return nil, err
	}

	activeJobs, err := uc.jobRepo.CountActiveWorkshopJobs(ctx, query.CompanyID)
	if err != nil {
		return nil, err
	}

	snapshot := &dto.CapacitySnapshotDTO{
		ActiveJobs:  activeJobs,
		Unlimited:   settings == nil,
		GeneratedAt: time.Now().UTC(),
	}
	if settings != nil {
		snapshot.MaxConcurrentJobs = settings.MaxConcurrentJobs()
		snapshot.UtilizationPercent = utilizationPercent(activeJobs, settings.MaxConcurrentJobs())
		snapshot.NearCapacity = snapshot.UtilizationPercent >= constants.CapacityWarningThresholdPercent
	}

	technicians, err := uc.techRepo.ListActive(ctx, query.CompanyID)
	if err != nil {
		return nil, err
	}

	maxPerTechnician := constants.DefaultMaxJobsPerTechnician
	if settings != nil {
		maxPerTechnician = settings.MaxJobsPerTechnician()
	}

	for _, tech := range technicians {
		count, err := uc.jobRepo.CountTechnicianActiveJobs(ctx, query.CompanyID, tech.ID())
		if err != nil {
			return nil, err
		}

		util := dto.TechnicianUtilizationDTO{
			TechnicianID:       tech.ID(),
			Name:               tech.Name(),
			ActiveJobs:         count,
			MaxJobs:            maxPerTechnician,
			UtilizationPercent: utilizationPercent(count, maxPerTechnician),
			RemainingCapacity:  maxPerTechnician - count,
		}
		if util.RemainingCapacity < 0 {
			util.RemainingCapacity = 0
		}
		util.NearCapacity = util.UtilizationPercent >= constants.CapacityWarningThresholdPercent
		snapshot.Technicians = append(snapshot.Technicians, util)
	}

	sort.SliceStable(snapshot.Technicians, func(i, j int) bool {
		a, b := snapshot.Technicians[i], snapshot.Technicians[j]
		if a.ActiveJobs != b.ActiveJobs {
			return a.ActiveJobs > b.ActiveJobs
		}
		return a.Name < b.Name
	})

	if uc.cache != nil {
		uc.cache.Set(ctx, query.CompanyID, snapshot)
	}

	return snapshot, nil
}

// utilizationPercent returns active/max as a percentage rounded to two
// decimals; zero max reports zero.
func utilizationPercent(active, max int) float64 {
	if max <= 0 {
		return 0
	}
	return math.Round(float64(active)/float64(max)*10000) / 100
}
