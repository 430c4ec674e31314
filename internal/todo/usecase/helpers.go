package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"todo-list-service/internal/model"
	"todo-list-service/internal/todo"
	pkgErrors "todo-list-service/pkg/errors"
	"todo-list-service/pkg/gcalendar"
)

const defaultEventDuration = 30 * time.Minute

// validate checks the fields a stored item must always satisfy.
func (uc *implUseCase) validate(item model.TodoItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return pkgErrors.Wrap(pkgErrors.KindValidation, todo.ErrEmptyTitle)
	}
	if utf8.RuneCountInString(item.Title) > todo.MaxTitleLength {
		return pkgErrors.Wrapf(pkgErrors.KindValidation, todo.ErrTitleTooLong, "title exceeds %d characters", todo.MaxTitleLength)
	}
	if utf8.RuneCountInString(item.Description) > todo.MaxDescriptionLength {
		return pkgErrors.Wrapf(pkgErrors.KindValidation, todo.ErrDescTooLong, "description exceeds %d characters", todo.MaxDescriptionLength)
	}
	return nil
}

// fetch loads an item and turns absence into a NotFound error.
func (uc *implUseCase) fetch(ctx context.Context, op, id string) (model.TodoItem, error) {
	item, err := uc.repo.GetOneTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneTodo: %v", op, err)
		return model.TodoItem{}, pkgErrors.Wrapf(pkgErrors.KindPersistence, err, "failed to load todo item %s", id)
	}
	if item.ID == "" {
		return model.TodoItem{}, pkgErrors.Wrapf(pkgErrors.KindNotFound, todo.ErrTodoNotFound, "todo item %s", id)
	}
	return item, nil
}

// save persists the patched entity, never a freshly mapped one, so the id and
// untouched fields survive.
func (uc *implUseCase) save(ctx context.Context, op string, item model.TodoItem) (model.TodoItem, error) {
	saved, err := uc.repo.SaveTodo(ctx, item)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s SaveTodo: %v", op, err)
		return model.TodoItem{}, pkgErrors.Wrapf(pkgErrors.KindPersistence, err, "failed to save todo item %s", item.ID)
	}
	return saved, nil
}

// mirrorDueDate creates a calendar event for the item's due date. Failures are
// logged and ignored.
func (uc *implUseCase) mirrorDueDate(ctx context.Context, item model.TodoItem) {
	if uc.calendar.Client == nil || item.DueDate == nil {
		return
	}

	start := *item.DueDate
	event, err := uc.calendar.Client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendar.CalendarID,
		Summary:     item.Title,
		Description: item.Description,
		StartTime:   start,
		EndTime:     start.Add(uc.calendar.EventDuration),
		Timezone:    uc.calendar.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create CreateEvent: %v", err)
		return
	}
	uc.l.Infof(ctx, "uc.Create: due date mirrored to calendar event %s", event.ID)
}
