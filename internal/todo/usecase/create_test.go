package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"todo-list-service/internal/model"
	"todo-list-service/internal/todo"
	"todo-list-service/internal/todo/usecase"
	pkgErrors "todo-list-service/pkg/errors"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Persists mapped item", func(t *testing.T) {
		var inserted model.TodoItem
		repo := &mockRepo{insertFunc: func(item model.TodoItem) (model.TodoItem, error) {
			inserted = item
			item.ID = "id-1"
			return item, nil
		}}
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})

		out, err := uc.Create(ctx, todo.CreateInput{Title: "Buy milk", Description: "2 litres", DueDate: &due})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.inserts != 1 {
			t.Errorf("expected exactly one insert, got %d", repo.inserts)
		}
		if inserted.ID != "" {
			t.Errorf("id must be assigned by the store, got %q", inserted.ID)
		}
		if out.Item.ID != "id-1" || out.Item.Title != "Buy milk" || out.Item.Description != "2 litres" {
			t.Errorf("unexpected output: %+v", out.Item)
		}
		if out.Item.DueDate == nil || !out.Item.DueDate.Equal(due) {
			t.Errorf("unexpected due date: %v", out.Item.DueDate)
		}
	})

	t.Run("Validation errors", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, nil, usecase.CalendarOptions{}, &mockLogger{})

		tcs := []struct {
			name  string
			input todo.CreateInput
			want  error
		}{
			{"blank title", todo.CreateInput{Title: "   "}, todo.ErrEmptyTitle},
			{"long title", todo.CreateInput{Title: strings.Repeat("a", todo.MaxTitleLength+1)}, todo.ErrTitleTooLong},
			{"long description", todo.CreateInput{Title: "ok", Description: strings.Repeat("d", todo.MaxDescriptionLength+1)}, todo.ErrDescTooLong},
		}
		for _, tc := range tcs {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Create(ctx, tc.input)
				if !pkgErrors.Is(err, pkgErrors.KindValidation) || !errors.Is(err, tc.want) {
					t.Errorf("expected Validation wrapping %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("Insert failure is Persistence", func(t *testing.T) {
		cause := errors.New("unique violation")
		repo := &mockRepo{insertFunc: func(item model.TodoItem) (model.TodoItem, error) {
			return model.TodoItem{}, cause
		}}
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})

		_, err := uc.Create(ctx, todo.CreateInput{Title: "x"})
		if !pkgErrors.Is(err, pkgErrors.KindPersistence) {
			t.Fatalf("expected Persistence, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("expected cause to be wrapped")
		}
		if pkgErrors.Message(err) != "failed to create todo item" {
			t.Errorf("unexpected public message %q", pkgErrors.Message(err))
		}
	})

	t.Run("Due date mirrored to calendar", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := usecase.New(&mockRepo{}, nil, usecase.CalendarOptions{
			Client:        cal,
			CalendarID:    "team",
			Timezone:      "UTC",
			EventDuration: time.Hour,
		}, &mockLogger{})

		if _, err := uc.Create(ctx, todo.CreateInput{Title: "Dentist", DueDate: &due}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.requests) != 1 {
			t.Fatalf("expected 1 calendar request, got %d", len(cal.requests))
		}
		req := cal.requests[0]
		if req.CalendarID != "team" || req.Summary != "Dentist" || !req.StartTime.Equal(due) || !req.EndTime.Equal(due.Add(time.Hour)) {
			t.Errorf("unexpected calendar request: %+v", req)
		}
	})

	t.Run("No due date skips calendar", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := usecase.New(&mockRepo{}, nil, usecase.CalendarOptions{Client: cal}, &mockLogger{})

		if _, err := uc.Create(ctx, todo.CreateInput{Title: "Someday"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.requests) != 0 {
			t.Errorf("expected no calendar request")
		}
	})

	t.Run("Calendar failure does not fail create", func(t *testing.T) {
		cal := &mockCalendarClient{err: errors.New("quota exceeded")}
		uc := usecase.New(&mockRepo{}, nil, usecase.CalendarOptions{Client: cal}, &mockLogger{})

		out, err := uc.Create(ctx, todo.CreateInput{Title: "Dentist", DueDate: &due})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ID == "" {
			t.Errorf("expected item to be created")
		}
	})
}
