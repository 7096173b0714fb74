package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskByID qualifies the id column; required whenever the query also
// joins todos, where a bare "id" would be ambiguous.
type TaskByID struct {
	ID uuid.UUID
}

func (s TaskByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tasks.id = ?", s.ID)
}

type ByTodoID struct {
	TodoID uuid.UUID
}

func (s ByTodoID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("todo_id = ?", s.TodoID)
}

// TaskOwnedThroughTodo resolves task ownership through the parent todo.
// Tasks have no user_id column of their own.
type TaskOwnedThroughTodo struct {
	UserID uuid.UUID
}

func (s TaskOwnedThroughTodo) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN todos ON todos.id = tasks.todo_id").
		Where("todos.user_id = ?", s.UserID)
}
