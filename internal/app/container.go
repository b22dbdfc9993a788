package app

import (
	"context"
	"log"
	"time"

	"jobhunt/internal/config"
	"jobhunt/internal/database"
	dbpostgres "jobhunt/internal/database/postgres"
	"jobhunt/internal/infrastructure/cache"
	"jobhunt/internal/pkg/jwt"
	"jobhunt/internal/repository"
	"jobhunt/internal/scheduler"
	"jobhunt/internal/usecase"
	ucjob "jobhunt/internal/usecase/job"
	"jobhunt/internal/ws"
)

type Container struct {
	Config    config.Config
	Logger    *log.Logger
	DB        database.DB
	Cache     *cache.Redis
	Hub       *ws.Hub
	JWT       jwt.Service
	Usecases  Usecases
	Scheduler *scheduler.Scheduler
}

type Usecases struct {
	Auth              usecase.AuthUsecase
	JobSearch         usecase.JobSearchUsecase
	JobRecommendation usecase.JobRecommendationUsecase
	JobPosting        usecase.JobPostingUsecase
	Application       usecase.ApplicationUsecase
	SavedJob          usecase.SavedJobUsecase
	Profile           usecase.ProfileUsecase
	Company           usecase.CompanyUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := log.Default()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)
	jwtSvc := jwt.NewHMACService(cfg.JWT)

	uc := NewUsecases(cfg, db, jwtSvc, redisCache, ws.NewNotifier(hub), logger)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.RetireAfterDays > 0 {
		sched = scheduler.New(uc.JobPosting, cfg.Scheduler.RetireSchedule, logger)
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Hub:       hub,
		JWT:       jwtSvc,
		Usecases:  uc,
		Scheduler: sched,
	}, nil
}

// NewUsecases wires repositories into usecases. A nil cache disables result
// caching and the retirement lock; a nil notifier drops catalog events.
func NewUsecases(
	cfg config.Config,
	db database.DB,
	jwtSvc jwt.Service,
	c usecase.SearchCache,
	notifier usecase.CatalogNotifier,
	logger *log.Logger,
) Usecases {
	jobs := repository.NewPostgresJobRepository(db)
	companies := repository.NewPostgresCompanyRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)
	saved := repository.NewPostgresSavedJobRepository(db)
	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)

	retire := ucjob.NewRetireService(jobs, c, logger, cfg.Scheduler.RetireAfterDays)

	var auth usecase.AuthUsecase
	if jwtSvc != nil {
		auth = usecase.NewAuthUsecase(users, jwtSvc)
	}

	return Usecases{
		Auth:      auth,
		JobSearch: usecase.NewJobSearchUsecase(jobs, c, logger),
		JobRecommendation: usecase.NewJobRecommendationUsecase(usecase.JobRecommendationDeps{
			Users:        users,
			Profiles:     profiles,
			Applications: applications,
			Jobs:         jobs,
			Cache:        c,
			Logger:       logger,
			DefaultLimit: cfg.Recommendation.DefaultLimit,
			MaxLimit:     cfg.Recommendation.MaxLimit,
		}),
		JobPosting: usecase.NewJobPostingUsecase(usecase.JobPostingDeps{
			Jobs:         jobs,
			Companies:    companies,
			Applications: applications,
			Retire:       retire,
			Cache:        c,
			Notifier:     notifier,
			Logger:       logger,
		}),
		Application: usecase.NewApplicationUsecase(applications, jobs, c),
		SavedJob:    usecase.NewSavedJobUsecase(saved, jobs),
		Profile:     usecase.NewProfileUsecase(users, profiles, c),
		Company:     usecase.NewCompanyUsecase(companies),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
