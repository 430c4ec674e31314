package usecase

import (
	"context"

	"todo-list-service/internal/todo"
	pkgErrors "todo-list-service/pkg/errors"
)

// Create maps the input to a new item and inserts it.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateInput) (todo.CreateOutput, error) {
	item := uc.mapper.ToTodoItem(input)
	if err := uc.validate(item); err != nil {
		return todo.CreateOutput{}, err
	}

	created, err := uc.repo.InsertTodo(ctx, item)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertTodo: %v", err)
		return todo.CreateOutput{}, pkgErrors.Wrapf(pkgErrors.KindPersistence, err, "failed to create todo item")
	}

	uc.mirrorDueDate(ctx, created)

	return todo.CreateOutput{Item: created}, nil
}
