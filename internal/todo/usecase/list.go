package usecase

import (
	"context"

	"todo-list-service/internal/todo"
	pkgErrors "todo-list-service/pkg/errors"
)

// List returns every item. A store that yields no collection at all is
// reported as NotFound; a non-nil empty collection is returned unchanged.
func (uc *implUseCase) List(ctx context.Context) (todo.ListOutput, error) {
	items, err := uc.repo.ListTodos(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListOutput{}, pkgErrors.Wrapf(pkgErrors.KindPersistence, err, "failed to list todo items")
	}
	if items == nil {
		return todo.ListOutput{}, pkgErrors.Wrap(pkgErrors.KindNotFound, todo.ErrNoTodos)
	}
	return todo.ListOutput{Items: items}, nil
}
