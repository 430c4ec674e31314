package todo

import "errors"

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

var (
	ErrNoTodos         = errors.New("no todo items found")
	ErrTodoNotFound    = errors.New("not found")
	ErrAlreadyComplete = errors.New("completion state unchanged")
	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrDescTooLong     = errors.New("description is too long")
)
