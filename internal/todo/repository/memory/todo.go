package memory

import (
	"context"

	"github.com/google/uuid"

	"todo-list-service/internal/model"
	repo "todo-list-service/internal/todo/repository"
)

// ListTodos returns items in insertion order, or nil when the store is empty.
func (r *implRepository) ListTodos(ctx context.Context) ([]model.TodoItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []model.TodoItem
	for _, id := range r.order {
		items = append(items, clone(r.items[id]))
	}
	return items, nil
}

func (r *implRepository) GetOneTodo(ctx context.Context, id string) (model.TodoItem, error) {
	if err := ctx.Err(); err != nil {
		return model.TodoItem{}, repo.ErrFailedToGet
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return model.TodoItem{}, nil
	}
	return clone(item), nil
}

func (r *implRepository) InsertTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	if err := ctx.Err(); err != nil {
		return model.TodoItem{}, repo.ErrFailedToInsert
	}

	now := r.now()
	item = clone(item)
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return clone(item), nil
}

func (r *implRepository) SaveTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	if err := ctx.Err(); err != nil {
		return model.TodoItem{}, repo.ErrFailedToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		r.l.Warnf(ctx, "todo/repository/memory.SaveTodo: id %s does not exist", item.ID)
		return model.TodoItem{}, repo.ErrFailedToUpdate
	}

	item = clone(item)
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = r.now()
	r.items[item.ID] = item
	return clone(item), nil
}

func (r *implRepository) DeleteTodo(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return repo.ErrFailedToDelete
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// clone detaches the DueDate pointer so callers never share state with the map.
func clone(item model.TodoItem) model.TodoItem {
	if item.DueDate != nil {
		due := *item.DueDate
		item.DueDate = &due
	}
	return item
}
