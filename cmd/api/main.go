package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-list-service/config"
	_ "todo-list-service/docs" // Swagger docs
	"todo-list-service/internal/httpserver"
	"todo-list-service/internal/middleware"
	"todo-list-service/internal/todo"
	"todo-list-service/internal/todo/repository"
	"todo-list-service/internal/todo/repository/memory"
	"todo-list-service/internal/todo/repository/postgre"
	"todo-list-service/internal/todo/usecase"
	"todo-list-service/pkg/gcalendar"
	"todo-list-service/pkg/log"
	"todo-list-service/pkg/postgres"
)

// @title       Todo List API
// @description CRUD service for todo items with optional Google Calendar due-date mirroring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo List Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Storage
	repo, db, err := newRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}
	if db != nil {
		defer db.Close()
	}

	// 4. Google Calendar client (optional)
	calendarOpts := usecase.CalendarOptions{
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		Timezone:      cfg.GoogleCalendar.Timezone,
		EventDuration: cfg.GoogleCalendar.EventDuration,
	}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClient(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./cmd/gcal-auth` to generate the OAuth token")
		} else {
			calendarOpts.Client = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Todo UseCase
	todoUC := usecase.New(repo, todo.NewMapper(), calendarOpts, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		},
		DB:     db,
		TodoUC: todoUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newRepository builds the configured store. db is nil for the memory driver.
func newRepository(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.Repository, *sql.DB, error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		return memory.New(logger), nil, nil
	}

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	if cfg.Postgres.Migrate {
		if err := postgre.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info(ctx, "Database migrations applied")
	}

	return postgre.New(db, logger), db, nil
}
