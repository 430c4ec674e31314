package usecase

import (
	"context"
	"time"

	"todo-list-service/internal/todo"
	"todo-list-service/internal/todo/repository"
	"todo-list-service/pkg/gcalendar"
	"todo-list-service/pkg/log"
)

// Calendar is the subset of the Google Calendar client used to mirror due dates.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarOptions configures due-date mirroring. A nil Client disables it.
type CalendarOptions struct {
	Client        Calendar
	CalendarID    string
	Timezone      string
	EventDuration time.Duration
}

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo     repository.Repository
	mapper   todo.Mapper
	calendar CalendarOptions
	l        log.Logger
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, mapper todo.Mapper, calendar CalendarOptions, l log.Logger) *implUseCase {
	if mapper == nil {
		mapper = todo.NewMapper()
	}
	if calendar.EventDuration <= 0 {
		calendar.EventDuration = defaultEventDuration
	}
	return &implUseCase{
		repo:     repo,
		mapper:   mapper,
		calendar: calendar,
		l:        l,
	}
}
