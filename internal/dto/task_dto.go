package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title  string    `json:"title" validate:"required,max=255"`
	TodoId uuid.UUID `json:"todo_id" validate:"required"`
}

type UpdateTaskRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitempty,max=255"`
	IsCompleted *bool     `json:"is_completed"`
}

type TaskResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"is_completed"`
	TodoId      uuid.UUID  `json:"todo_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
