package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	jobusecases "fieldops/internal/application/job/usecases"
	"fieldops/internal/application/workshop/usecases"
	"fieldops/internal/domain/notification"
	"fieldops/internal/infrastructure/auth"
	"fieldops/internal/infrastructure/cache"
	"fieldops/internal/infrastructure/config"
	"fieldops/internal/infrastructure/email"
	"fieldops/internal/infrastructure/ratelimit"
	"fieldops/internal/infrastructure/repository"
	"fieldops/internal/infrastructure/services"
	jobhandler "fieldops/internal/interfaces/http/handlers/job"
	workshophandler "fieldops/internal/interfaces/http/handlers/workshop"
	"fieldops/internal/interfaces/http/middleware"
	"fieldops/internal/shared/db"
	"fieldops/internal/shared/logger"

	_ "fieldops/docs"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	workshopHandler *workshophandler.WorkshopHandler
	jobHandler      *jobhandler.JobHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     ratelimit.RateLimiter
	rateLimitCfg    ratelimit.RateLimitConfig
}

// NewRouter creates the HTTP router with all dependencies. Redis-backed
// pieces (capacity cache, rate limiting) are skipped when redis is
// disabled; the email dispatcher is skipped when email is disabled.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	jobRepo := repository.NewJobRepository(database)
	partRepo := repository.NewJobPartRepository(database)
	statusRepo := repository.NewEquipmentStatusRepository(database)
	historyRepo := repository.NewStatusHistoryRepository(database)
	intakeRepo := repository.NewIntakeRepository(database)
	settingRepo := repository.NewWorkshopSettingsRepository(database)
	techRepo := repository.NewTechnicianRepository(database)
	queueRepo := repository.NewQueueRepository(database)

	numberGen := services.NewJobNumberGenerator(database)
	txMgr := db.NewTransactionManager(database)

	var (
		redisClient   *redis.Client
		snapshotCache usecases.SnapshotCache
		rateLimiter   ratelimit.RateLimiter
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := time.Duration(cfg.Workshop.CapacityCacheTTLSeconds) * time.Second
		snapshotCache = cache.NewRedisCapacityCache(redisClient, ttl, log)
		rateLimiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	var dispatcher notification.Dispatcher
	if cfg.Email.Enabled {
		templates, err := email.LoadTemplateStore(cfg.Workshop.TemplatesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load notification templates: %w", err)
		}
		dispatcher = email.NewDispatcher(&cfg.Email, templates, settingRepo, log)
	}

	capacity := usecases.NewCapacityService(jobRepo, settingRepo, log)
	machine := usecases.NewStatusMachine(jobRepo, statusRepo, historyRepo, log)
	totalCalc := usecases.NewCalculateJobTotalUseCase(jobRepo, partRepo, log)

	getQueueUC := usecases.NewGetQueueUseCase(queueRepo, log)
	getCapacityUC := usecases.NewGetCapacityUseCase(jobRepo, techRepo, settingRepo, snapshotCache, log)
	intakeUC := usecases.NewIntakeEquipmentUseCase(jobRepo, statusRepo, historyRepo, intakeRepo, settingRepo, capacity, machine, txMgr, log)
	claimUC := usecases.NewClaimJobUseCase(jobRepo, statusRepo, techRepo, capacity, machine, txMgr, dispatcher, log)
	transitionUC := usecases.NewTransitionStatusUseCase(machine, totalCalc, txMgr, dispatcher, log)
	statusHistoryUC := usecases.NewGetStatusHistoryUseCase(statusRepo, historyRepo, log)
	invoiceReadinessUC := usecases.NewInvoiceReadinessUseCase(jobRepo, statusRepo, log)

	workshopHandler := workshophandler.NewWorkshopHandler(
		getQueueUC, getCapacityUC, intakeUC, claimUC,
		transitionUC, statusHistoryUC, invoiceReadinessUC, totalCalc,
	)

	createJobUC := jobusecases.NewCreateJobUseCase(jobRepo, numberGen, log)
	getJobUC := jobusecases.NewGetJobUseCase(jobRepo, log)
	listJobsUC := jobusecases.NewListJobsUseCase(jobRepo, log)
	updateJobUC := jobusecases.NewUpdateJobUseCase(jobRepo, log)
	deleteJobUC := jobusecases.NewDeleteJobUseCase(jobRepo, log)

	jobHandler := jobhandler.NewJobHandler(createJobUC, getJobUC, listJobsUC, updateJobUC, deleteJobUC)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	return &Router{
		engine:          engine,
		cfg:             cfg,
		workshopHandler: workshopHandler,
		jobHandler:      jobHandler,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		rateLimitCfg: ratelimit.RateLimitConfig{
			RequestsPerMinute: 60,
			RequestsPerHour:   600,
			RequestsPerDay:    5000,
		},
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	log := logger.NewLogger()

	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	if r.cfg.Server.Mode != gin.ReleaseMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	throttle := middleware.RateLimit(r.rateLimiter, r.rateLimitCfg)

	workshop := r.engine.Group("/workshop")
	workshop.Use(r.authMiddleware.RequireAuth())
	{
		workshop.GET("/queue", r.workshopHandler.GetQueue)
		workshop.GET("/capacity", r.workshopHandler.GetCapacity)

		workshop.POST("/jobs/:id/intake", throttle, r.workshopHandler.IntakeEquipment)
		workshop.POST("/jobs/:id/claim", throttle, r.workshopHandler.ClaimJob)
		workshop.PATCH("/jobs/:id/status", throttle, r.workshopHandler.TransitionStatus)
		workshop.POST("/jobs/:id/total", throttle, r.workshopHandler.CalculateTotal)

		workshop.GET("/jobs/:id/status-history", r.workshopHandler.GetStatusHistory)
		workshop.GET("/jobs/:id/invoice-readiness", r.workshopHandler.GetInvoiceReadiness)
	}

	jobs := r.engine.Group("/jobs")
	jobs.Use(r.authMiddleware.RequireAuth())
	{
		jobs.POST("", r.jobHandler.CreateJob)
		jobs.GET("", r.jobHandler.ListJobs)
		jobs.GET("/:id", r.jobHandler.GetJob)
		jobs.PUT("/:id", r.jobHandler.UpdateJob)
		jobs.DELETE("/:id", r.jobHandler.DeleteJob)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
