package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todo-list-service/internal/model"
	repo "todo-list-service/internal/todo/repository"
)

const todoColumns = `id, title, description, due_date, is_complete, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (model.TodoItem, error) {
	var (
		item model.TodoItem
		due  sql.NullTime
	)
	if err := s.Scan(&item.ID, &item.Title, &item.Description, &due, &item.IsComplete, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return model.TodoItem{}, err
	}
	if due.Valid {
		t := due.Time
		item.DueDate = &t
	}
	return item, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// ListTodos returns all items ordered by creation time, or nil when the table is empty.
func (r *implRepository) ListTodos(ctx context.Context) ([]model.TodoItem, error) {
	const query = `SELECT ` + todoColumns + ` FROM todo_items ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.TodoItem
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTodos"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// GetOneTodo retrieves a single item by id.
// Returns zero-value TodoItem (ID == "") when not found; not-found is not an error.
func (r *implRepository) GetOneTodo(ctx context.Context, id string) (model.TodoItem, error) {
	const query = `SELECT ` + todoColumns + ` FROM todo_items WHERE id = $1`

	item, err := scanTodo(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.TodoItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return model.TodoItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// InsertTodo inserts a new row and returns it with the store-assigned id.
func (r *implRepository) InsertTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	const query = `
		INSERT INTO todo_items (title, description, due_date, is_complete, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + todoColumns

	created, err := scanTodo(r.db.QueryRowContext(ctx, query,
		item.Title, item.Description, nullTime(item.DueDate), item.IsComplete,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertTodo"), err)
		return model.TodoItem{}, repo.ErrFailedToInsert
	}
	return created, nil
}

// SaveTodo overwrites every mutable column of the row with item.ID.
func (r *implRepository) SaveTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	const query = `
		UPDATE todo_items
		SET title = $1, description = $2, due_date = $3, is_complete = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + todoColumns

	saved, err := scanTodo(r.db.QueryRowContext(ctx, query,
		item.Title, item.Description, nullTime(item.DueDate), item.IsComplete, item.ID,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTodo"), err)
		return model.TodoItem{}, repo.ErrFailedToUpdate
	}
	return saved, nil
}

// DeleteTodo removes an item by id.
func (r *implRepository) DeleteTodo(ctx context.Context, id string) error {
	const query = `DELETE FROM todo_items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
