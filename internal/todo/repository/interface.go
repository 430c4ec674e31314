package repository

import (
	"context"

	"todo-list-service/internal/model"
)

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	TodoRepository
}

// TodoRepository defines all data access methods for the TodoItem entity.
type TodoRepository interface {
	// ListTodos returns nil when the store holds no items.
	ListTodos(ctx context.Context) ([]model.TodoItem, error)
	// GetOneTodo returns a zero-value item (ID == "") when not found.
	GetOneTodo(ctx context.Context, id string) (model.TodoItem, error)
	InsertTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error)
	// SaveTodo writes every field of item and returns the committed row.
	SaveTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error)
	DeleteTodo(ctx context.Context, id string) error
}
