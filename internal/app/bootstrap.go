package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobhunt/internal/config"
	"jobhunt/internal/database/migration"
	"jobhunt/internal/database/seeder"
	"jobhunt/internal/delivery/http/handler"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/delivery/http/routes"
	v1 "jobhunt/internal/delivery/http/routes/v1"
	"jobhunt/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects dependencies, prepares the schema and starts the
// background workers. The returned cleanup stops them and releases
// connections.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := prepareDatabase(cfg, c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	go c.Hub.Run(ctx)

	if c.Scheduler != nil {
		if err := c.Scheduler.Start(ctx); err != nil {
			cancel()
			_ = c.Close()
			return nil, nil, err
		}
	}

	app := New(cfg, c)

	cleanup := func() error {
		cancel()
		if c.Scheduler != nil {
			c.Scheduler.Stop()
		}
		return c.Close()
	}
	return app, cleanup, nil
}

func prepareDatabase(cfg config.Config, c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.Database.RunMigrations {
		r := migration.Runner{FS: migration.Source(cfg.Database.MigrationsDir), Logger: c.Logger}
		if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}
	if cfg.Database.RunSeeders {
		r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
		if err := r.Run(ctx, c.DB); err != nil {
			return fmt.Errorf("seeders: %w", err)
		}
	}
	return nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	// access log wraps the error middleware so it sees the rendered status
	accessLog := middleware.NewAccessLogMiddleware(c.Logger, "/health")
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(c.Logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	uc := c.Usecases
	handlers := v1.Handlers{
		Auth:           handler.NewAuthHandler(uc.Auth),
		Jobs:           handler.NewJobsHandler(uc.JobSearch, uc.JobPosting),
		Recommendation: handler.NewJobRecommendationHandler(uc.JobRecommendation),
		Application:    handler.NewApplicationHandler(uc.Application, uc.SavedJob),
		Profile:        handler.NewProfileHandler(uc.Profile),
		Employer:       handler.NewEmployerHandler(uc.JobPosting),
		Company:        handler.NewCompanyHandler(uc.Company),
	}

	auth := middleware.NewAuthMiddleware(c.JWT).Middleware()
	health := handler.NewHealthHandler(c.DB, c.Cache)

	routes.NewRegistry(health, ws.NewHandler(c.Hub, c.Logger), handlers, auth).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
