package todo

import (
	"context"

	"todo-list-service/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Complete(ctx context.Context, input CompleteInput) (CompleteOutput, error)
	Delete(ctx context.Context, id string) error
}

// Mapper converts a create request into the entity shape handed to the store.
type Mapper interface {
	ToTodoItem(input CreateInput) model.TodoItem
}
