package model

import "time"

// TodoItem is a single task on the to-do list.
type TodoItem struct {
	ID          string     // Assigned by the store
	Title       string
	Description string     // Empty when not provided
	DueDate     *time.Time // nil when the item has no deadline
	IsComplete  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
