package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/BenjaminLindeen/RoomHub/internal/config"
	"github.com/BenjaminLindeen/RoomHub/internal/platform/gemini"
	"github.com/BenjaminLindeen/RoomHub/internal/platform/postgres"
	"github.com/BenjaminLindeen/RoomHub/internal/service"
	"github.com/BenjaminLindeen/RoomHub/internal/service/auth"
	"github.com/BenjaminLindeen/RoomHub/internal/service/menu"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore        store.UserStore
	houseStore       store.HouseStore
	taskStore        store.TaskStore
	restrictionStore store.RestrictionStore

	// Services
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	houseService     service.HouseService
	taskService      service.TaskService
	menuService      *menu.Service
}

// newApplication creates a new application instance with all dependencies
// initialized. Core dependencies like configuration, logger, and the
// database connection must be established before calling it.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewUserStore(db, cfg.Auth.BcryptCost)
	app.houseStore = postgres.NewHouseStore(db)
	app.taskStore = postgres.NewTaskStore(db)
	app.restrictionStore = postgres.NewRestrictionStore(db)

	app.houseService = service.NewHouseService(db, app.houseStore, app.taskStore, app.restrictionStore)
	app.taskService = service.NewTaskService(app.taskStore, app.houseStore, app.userStore)

	// The menu planner is optional: without an API key the endpoint reports
	// itself unavailable instead of blocking startup.
	var planner menu.Planner
	if cfg.Menu.GeminiAPIKey != "" {
		planner, err = gemini.NewPlanner(ctx, logger.With("component", "menu_planner"), cfg.Menu)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize menu planner: %w", err)
		}
		logger.Info("AI menu planner initialized", "model", cfg.Menu.ModelName)
	} else {
		logger.Info("AI menu planner disabled, no API key configured")
	}
	app.menuService = menu.NewService(planner, app.houseStore, app.restrictionStore)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
