package usecase_test

import (
	"context"

	"todo-list-service/internal/model"
	"todo-list-service/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo records calls so tests can assert one fetch and one persist per op.
type mockRepo struct {
	listFunc   func() ([]model.TodoItem, error)
	getFunc    func(id string) (model.TodoItem, error)
	insertFunc func(item model.TodoItem) (model.TodoItem, error)
	saveFunc   func(item model.TodoItem) (model.TodoItem, error)
	deleteFunc func(id string) error

	gets, inserts, saves, deletes int
	saved                         []model.TodoItem
}

func (m *mockRepo) ListTodos(ctx context.Context) ([]model.TodoItem, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *mockRepo) GetOneTodo(ctx context.Context, id string) (model.TodoItem, error) {
	m.gets++
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.TodoItem{}, nil
}

func (m *mockRepo) InsertTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	m.inserts++
	if m.insertFunc != nil {
		return m.insertFunc(item)
	}
	item.ID = "generated-id"
	return item, nil
}

func (m *mockRepo) SaveTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	m.saves++
	m.saved = append(m.saved, item)
	if m.saveFunc != nil {
		return m.saveFunc(item)
	}
	return item, nil
}

func (m *mockRepo) DeleteTodo(ctx context.Context, id string) error {
	m.deletes++
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// Mock calendar client for testing
type mockCalendarClient struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "event-1", Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func strPtr(s string) *string { return &s }
