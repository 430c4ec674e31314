package usecase

import (
	"context"

	"todo-list-service/internal/todo"
	pkgErrors "todo-list-service/pkg/errors"
)

// Detail retrieves a single item by id. An unknown id is not an error:
// the output reports Found == false and the caller decides.
func (uc *implUseCase) Detail(ctx context.Context, id string) (todo.DetailOutput, error) {
	item, err := uc.repo.GetOneTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTodo: %v", err)
		return todo.DetailOutput{}, pkgErrors.Wrapf(pkgErrors.KindPersistence, err, "failed to load todo item %s", id)
	}
	if item.ID == "" {
		return todo.DetailOutput{}, nil
	}
	return todo.DetailOutput{Item: item, Found: true}, nil
}

// Update applies a partial update. Returns NotFound when the item does not exist.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateInput) (todo.UpdateOutput, error) {
	item, err := uc.fetch(ctx, "Update", input.ID)
	if err != nil {
		return todo.UpdateOutput{}, err
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.DueDate != nil {
		due := *input.DueDate
		item.DueDate = &due
	}
	if input.IsComplete != item.IsComplete {
		item.IsComplete = input.IsComplete
	}

	if err := uc.validate(item); err != nil {
		return todo.UpdateOutput{}, err
	}

	saved, err := uc.save(ctx, "Update", item)
	if err != nil {
		return todo.UpdateOutput{}, err
	}
	return todo.UpdateOutput{Item: saved}, nil
}

// Complete sets the completion flag. Requesting the flag the item already has
// fails with AlreadyComplete.
func (uc *implUseCase) Complete(ctx context.Context, input todo.CompleteInput) (todo.CompleteOutput, error) {
	item, err := uc.fetch(ctx, "Complete", input.ID)
	if err != nil {
		return todo.CompleteOutput{}, err
	}

	if input.IsComplete == item.IsComplete {
		state := "incomplete"
		if item.IsComplete {
			state = "complete"
		}
		return todo.CompleteOutput{}, pkgErrors.Wrapf(pkgErrors.KindAlreadyComplete, todo.ErrAlreadyComplete,
			"todo item %s is already %s", item.ID, state)
	}
	item.IsComplete = input.IsComplete

	saved, err := uc.save(ctx, "Complete", item)
	if err != nil {
		return todo.CompleteOutput{}, err
	}
	return todo.CompleteOutput{Item: saved}, nil
}

// Delete removes an item by id. Returns NotFound when the item does not exist.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.fetch(ctx, "Delete", id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTodo(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return pkgErrors.Wrapf(pkgErrors.KindPersistence, err, "failed to delete todo item %s", id)
	}
	return nil
}
