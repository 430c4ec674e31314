package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"todo-list-service/internal/middleware"
	"todo-list-service/internal/todo"
	"todo-list-service/internal/todo/repository/memory"
	"todo-list-service/internal/todo/usecase"
	"todo-list-service/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.New(zap.NewNop())
	srv, err := New(l, Config{
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		RateLimit:   middleware.RateLimitConfig{Enabled: true, RequestsPerMin: 600},
		TodoUC:      usecase.New(memory.New(l), todo.NewMapper(), usecase.CalendarOptions{}, l),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	l := log.New(zap.NewNop())
	uc := usecase.New(memory.New(l), nil, usecase.CalendarOptions{}, l)

	tcs := []struct {
		name   string
		logger log.Logger
		cfg    Config
	}{
		{"Missing logger", nil, Config{Port: 1, Mode: "test", TodoUC: uc}},
		{"Missing mode", l, Config{Port: 1, TodoUC: uc}},
		{"Missing port", l, Config{Mode: "test", TodoUC: uc}},
		{"Missing usecase", l, Config{Port: 1, Mode: "test"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.logger, tc.cfg); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
			if w.Header().Get(middleware.HeaderRequestID) == "" {
				t.Errorf("expected request id header")
			}
		})
	}
}

func TestTodoRoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/todos", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected empty store to answer 404, got %d", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0 // let the kernel pick; Run is only checked for a clean shutdown

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
