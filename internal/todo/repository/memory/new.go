package memory

import (
	"sync"
	"time"

	"todo-list-service/internal/model"
	"todo-list-service/internal/todo/repository"
	"todo-list-service/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	items map[string]model.TodoItem
	order []string
	now   func() time.Time
	l     log.Logger
}

// New creates an in-process Repository. Data lives only as long as the process.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		items: make(map[string]model.TodoItem),
		now:   func() time.Time { return time.Now().UTC() },
		l:     l,
	}
}
