package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"todo-list-service/internal/middleware"
	"todo-list-service/internal/todo"
	"todo-list-service/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   middleware.RateLimitConfig

	// Storage, nil when running on the in-memory repository.
	db *sql.DB

	// Todo domain
	todoUC todo.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.RateLimitConfig

	DB     *sql.DB
	TodoUC todo.UseCase
}

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		db:          cfg.DB,
		todoUC:      cfg.TodoUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoUC == nil {
		return errors.New("todo usecase is required")
	}
	return nil
}
