package todo

import "todo-list-service/internal/model"

type mapper struct{}

// NewMapper returns the default Mapper.
func NewMapper() Mapper {
	return mapper{}
}

// ToTodoItem copies the request fields. ID and timestamps are left for the store.
func (mapper) ToTodoItem(input CreateInput) model.TodoItem {
	item := model.TodoItem{
		Title:       input.Title,
		Description: input.Description,
		IsComplete:  input.IsComplete,
	}
	if input.DueDate != nil {
		due := *input.DueDate
		item.DueDate = &due
	}
	return item
}
