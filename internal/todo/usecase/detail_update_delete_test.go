package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo-list-service/internal/model"
	"todo-list-service/internal/todo"
	"todo-list-service/internal/todo/repository/memory"
	"todo-list-service/internal/todo/usecase"
	pkgErrors "todo-list-service/pkg/errors"
)

func existing() model.TodoItem {
	due := time.Date(2026, 10, 30, 17, 0, 0, 0, time.UTC)
	return model.TodoItem{
		ID:          "id-1",
		Title:       "Buy milk",
		Description: "semi-skimmed",
		DueDate:     &due,
		IsComplete:  false,
		CreatedAt:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func repoWith(item model.TodoItem) *mockRepo {
	return &mockRepo{getFunc: func(id string) (model.TodoItem, error) {
		if id == item.ID {
			return item, nil
		}
		return model.TodoItem{}, nil
	}}
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown id is absent without error", func(t *testing.T) {
		uc := usecase.New(repoWith(existing()), nil, usecase.CalendarOptions{}, &mockLogger{})
		out, err := uc.Detail(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Found {
			t.Errorf("expected Found == false")
		}
	})

	t.Run("Known id is returned", func(t *testing.T) {
		uc := usecase.New(repoWith(existing()), nil, usecase.CalendarOptions{}, &mockLogger{})
		out, err := uc.Detail(ctx, "id-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Found || out.Item.Title != "Buy milk" {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Repository failure is Persistence", func(t *testing.T) {
		repo := &mockRepo{getFunc: func(id string) (model.TodoItem, error) { return model.TodoItem{}, errors.New("timeout") }}
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})
		if _, err := uc.Detail(ctx, "id-1"); !pkgErrors.Is(err, pkgErrors.KindPersistence) {
			t.Errorf("expected Persistence, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown id is NotFound", func(t *testing.T) {
		repo := repoWith(existing())
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})
		_, err := uc.Update(ctx, todo.UpdateInput{ID: "missing", Title: strPtr("x")})
		if !pkgErrors.Is(err, pkgErrors.KindNotFound) || !errors.Is(err, todo.ErrTodoNotFound) {
			t.Fatalf("expected NotFound, got %v", err)
		}
		if repo.saves != 0 {
			t.Errorf("expected no save on NotFound")
		}
	})

	t.Run("Empty update leaves entity unchanged", func(t *testing.T) {
		repo := repoWith(existing())
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})

		out, err := uc.Update(ctx, todo.UpdateInput{ID: "id-1", IsComplete: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := existing()
		got := out.Item
		if got.ID != want.ID || got.Title != want.Title || got.Description != want.Description ||
			got.IsComplete != want.IsComplete || !got.DueDate.Equal(*want.DueDate) || !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("expected unchanged entity, got %+v", got)
		}
	})

	t.Run("Completion flag follows request", func(t *testing.T) {
		repo := repoWith(existing())
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})

		out, err := uc.Update(ctx, todo.UpdateInput{ID: "id-1", IsComplete: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Item.IsComplete {
			t.Errorf("expected flag to flip to true")
		}
	})

	t.Run("Present fields overwrite and patched entity is persisted", func(t *testing.T) {
		repo := repoWith(existing())
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})
		newDue := time.Date(2026, 12, 1, 8, 0, 0, 0, time.UTC)

		_, err := uc.Update(ctx, todo.UpdateInput{ID: "id-1", Title: strPtr("Buy oat milk"), DueDate: &newDue})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gets != 1 || repo.saves != 1 {
			t.Errorf("expected one fetch and one persist, got %d/%d", repo.gets, repo.saves)
		}
		saved := repo.saved[0]
		if saved.ID != "id-1" {
			t.Errorf("persisted entity lost its id: %+v", saved)
		}
		if saved.Title != "Buy oat milk" || !saved.DueDate.Equal(newDue) {
			t.Errorf("present fields not applied: %+v", saved)
		}
		if saved.Description != "semi-skimmed" || !saved.CreatedAt.Equal(existing().CreatedAt) {
			t.Errorf("untouched fields not preserved: %+v", saved)
		}
	})

	t.Run("Blank title is Validation", func(t *testing.T) {
		repo := repoWith(existing())
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})
		_, err := uc.Update(ctx, todo.UpdateInput{ID: "id-1", Title: strPtr("")})
		if !pkgErrors.Is(err, pkgErrors.KindValidation) {
			t.Errorf("expected Validation, got %v", err)
		}
		if repo.saves != 0 {
			t.Errorf("expected no save on invalid update")
		}
	})

	t.Run("Save failure is Persistence", func(t *testing.T) {
		repo := repoWith(existing())
		repo.saveFunc = func(item model.TodoItem) (model.TodoItem, error) { return model.TodoItem{}, errors.New("deadlock") }
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})
		_, err := uc.Update(ctx, todo.UpdateInput{ID: "id-1"})
		if !pkgErrors.Is(err, pkgErrors.KindPersistence) {
			t.Errorf("expected Persistence, got %v", err)
		}
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown id is NotFound", func(t *testing.T) {
		uc := usecase.New(repoWith(existing()), nil, usecase.CalendarOptions{}, &mockLogger{})
		_, err := uc.Complete(ctx, todo.CompleteInput{ID: "missing", IsComplete: true})
		if !pkgErrors.Is(err, pkgErrors.KindNotFound) {
			t.Errorf("expected NotFound, got %v", err)
		}
	})

	t.Run("AlreadyComplete iff flag unchanged", func(t *testing.T) {
		tcs := []struct {
			current, requested bool
			wantErr            bool
		}{
			{false, false, true},
			{true, true, true},
			{false, true, false},
			{true, false, false},
		}
		for _, tc := range tcs {
			item := existing()
			item.IsComplete = tc.current
			repo := repoWith(item)
			uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})

			out, err := uc.Complete(ctx, todo.CompleteInput{ID: "id-1", IsComplete: tc.requested})
			if tc.wantErr {
				if !pkgErrors.Is(err, pkgErrors.KindAlreadyComplete) || !errors.Is(err, todo.ErrAlreadyComplete) {
					t.Errorf("current=%v requested=%v: expected AlreadyComplete, got %v", tc.current, tc.requested, err)
				}
				if repo.saves != 0 {
					t.Errorf("current=%v requested=%v: expected no save", tc.current, tc.requested)
				}
				continue
			}
			if err != nil {
				t.Errorf("current=%v requested=%v: unexpected error %v", tc.current, tc.requested, err)
				continue
			}
			if out.Item.IsComplete != tc.requested || repo.saves != 1 || repo.saved[0].ID != "id-1" {
				t.Errorf("current=%v requested=%v: unexpected result %+v", tc.current, tc.requested, out.Item)
			}
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown id is NotFound", func(t *testing.T) {
		repo := repoWith(existing())
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})
		err := uc.Delete(ctx, "missing")
		if !pkgErrors.Is(err, pkgErrors.KindNotFound) {
			t.Errorf("expected NotFound, got %v", err)
		}
		if repo.deletes != 0 {
			t.Errorf("expected no delete call")
		}
	})

	t.Run("Known id is removed", func(t *testing.T) {
		repo := repoWith(existing())
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})
		if err := uc.Delete(ctx, "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gets != 1 || repo.deletes != 1 {
			t.Errorf("expected one fetch and one delete, got %d/%d", repo.gets, repo.deletes)
		}
	})

	t.Run("Delete failure is Persistence", func(t *testing.T) {
		repo := repoWith(existing())
		repo.deleteFunc = func(id string) error { return errors.New("fk violation") }
		uc := usecase.New(repo, nil, usecase.CalendarOptions{}, &mockLogger{})
		if err := uc.Delete(ctx, "id-1"); !pkgErrors.Is(err, pkgErrors.KindPersistence) {
			t.Errorf("expected Persistence, got %v", err)
		}
	})
}

// TestLifecycle drives the use case against the in-memory store end to end.
func TestLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New(&mockLogger{}), todo.NewMapper(), usecase.CalendarOptions{}, &mockLogger{})

	if _, err := uc.List(ctx); !pkgErrors.Is(err, pkgErrors.KindNotFound) {
		t.Fatalf("expected empty store to list NotFound, got %v", err)
	}

	due := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	created, err := uc.Create(ctx, todo.CreateInput{Title: "Buy milk", Description: "whole", DueDate: &due, IsComplete: false})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	detail, err := uc.Detail(ctx, created.Item.ID)
	if err != nil || !detail.Found {
		t.Fatalf("detail: found=%v err=%v", detail.Found, err)
	}
	if detail.Item.Title != "Buy milk" || detail.Item.Description != "whole" || !detail.Item.DueDate.Equal(due) {
		t.Errorf("create/detail round trip mismatch: %+v", detail.Item)
	}

	if _, err := uc.Complete(ctx, todo.CompleteInput{ID: created.Item.ID, IsComplete: true}); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := uc.Complete(ctx, todo.CompleteInput{ID: created.Item.ID, IsComplete: true}); !pkgErrors.Is(err, pkgErrors.KindAlreadyComplete) {
		t.Fatalf("expected AlreadyComplete on second complete, got %v", err)
	}

	list, err := uc.List(ctx)
	if err != nil || len(list.Items) != 1 || !list.Items[0].IsComplete {
		t.Fatalf("unexpected list: %+v err=%v", list.Items, err)
	}

	if err := uc.Delete(ctx, created.Item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(ctx, created.Item.ID); !pkgErrors.Is(err, pkgErrors.KindNotFound) {
		t.Errorf("expected NotFound deleting twice, got %v", err)
	}
}
