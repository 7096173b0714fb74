package entity

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	Id        uuid.UUID
	Title     string
	DueDate   *time.Time
	Completed bool
	UserId    uuid.UUID
	State     Lifecycle
	Tasks     []*Task
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Task exists only in the context of its parent Todo. It carries no owner
// field of its own; ownership is always resolved through TodoId.
type Task struct {
	Id          uuid.UUID
	Title       string
	IsCompleted bool
	TodoId      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
