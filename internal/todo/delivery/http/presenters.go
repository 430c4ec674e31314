package http

import (
	"time"

	"todo-list-service/internal/model"
	"todo-list-service/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,max=255"`
	Description string     `json:"description" binding:"max=1000"`
	DueDate     *time.Time `json:"due_date"`
	IsComplete  bool       `json:"is_complete"`
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		IsComplete:  r.IsComplete,
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsComplete  *bool      `json:"is_complete" binding:"required"`
}

func (r updateReq) toInput() todo.UpdateInput {
	return todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		IsComplete:  *r.IsComplete,
	}
}

// ---

type completeReq struct {
	ID         string `json:"-"`
	IsComplete *bool  `json:"is_complete" binding:"required"`
}

func (r completeReq) toInput() todo.CompleteInput {
	return todo.CompleteInput{
		ID:         r.ID,
		IsComplete: *r.IsComplete,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsComplete  bool       `json:"is_complete"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTodoResp(item model.TodoItem) todoResp {
	return todoResp{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		DueDate:     item.DueDate,
		IsComplete:  item.IsComplete,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (h *handler) newListResp(out todo.ListOutput) []todoResp {
	items := make([]todoResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newTodoResp(item)
	}
	return items
}
