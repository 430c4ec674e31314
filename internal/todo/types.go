package todo

import (
	"time"

	"todo-list-service/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	IsComplete  bool
}

// UpdateInput is a partial update. Nil pointers leave the stored value as is.
// IsComplete is always applied when it differs from the stored flag.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	IsComplete  bool
}

type CompleteInput struct {
	ID         string
	IsComplete bool
}

// --- UseCase Outputs ---

type ListOutput struct {
	Items []model.TodoItem
}

// DetailOutput reports Found == false when no item has the requested id.
type DetailOutput struct {
	Item  model.TodoItem
	Found bool
}

type CreateOutput struct {
	Item model.TodoItem
}

type UpdateOutput struct {
	Item model.TodoItem
}

type CompleteOutput struct {
	Item model.TodoItem
}
