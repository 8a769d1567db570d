// Package internal contains core application functionality
package internal

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"

	"lockerlink/internal/analytics"
	"lockerlink/internal/config"
	"lockerlink/internal/database"
	"lockerlink/internal/jobs"
	"lockerlink/internal/logging"
	"lockerlink/web"
)

// Application bundles the web server with its optional analytics backend.
// Store, DB and Jobs are nil when no database is configured; the site still
// serves with analytics in disabled mode.
type Application struct {
	Config *config.Config
	Logger *slog.Logger
	Fiber  *fiber.App
	DB     *gorm.DB
	Store  *analytics.Store
	Jobs   *jobs.Scheduler
}

// NewApp creates a new application instance with default settings
func NewApp() (*Application, error) {
	return NewAppWithConfig(config.GetConfig())
}

// NewAppWithConfig creates a new application with the provided config
func NewAppWithConfig(cfg *config.Config) (*Application, error) {
	logger := logging.NewLogger(cfg)

	var (
		db        *gorm.DB
		store     *analytics.Store
		scheduler *jobs.Scheduler
	)
	if cfg.AnalyticsEnabled() {
		var err error
		db, err = database.Connect(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		store = analytics.NewStore(db, logger)
		scheduler = jobs.NewScheduler(db, logger, cfg)
	} else {
		logger.Info("No database configured, analytics runs in disabled mode")
	}

	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	engine := html.NewFileSystem(nethttp.FS(templates), ".html")

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		Views:                 engine,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: !cfg.IsDevelopment(),
	})
	app.Use(recover.New())

	a := &Application{
		Config: cfg,
		Logger: logger,
		Fiber:  app,
		DB:     db,
		Store:  store,
		Jobs:   scheduler,
	}
	MountAppRoutes(a)
	return a, nil
}

// Start launches background jobs and blocks serving HTTP until Shutdown.
func (a *Application) Start() error {
	if a.Jobs != nil {
		a.Jobs.Start()
	}

	addr := ":" + a.Config.AppPort
	a.Logger.Info("Starting server", slog.String("addr", addr))
	return a.Fiber.Listen(addr)
}

// Shutdown stops background jobs, drains in-flight requests and closes the
// database connection.
func (a *Application) Shutdown(ctx context.Context) error {
	if a.Jobs != nil {
		a.Jobs.Stop()
	}

	if err := a.Fiber.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Logger.Warn("Failed to close database", slog.Any("error", err))
			}
		}
	}

	a.Logger.Info("Server stopped")
	return nil
}
