package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskItem struct {
	Title       string `json:"title" validate:"required,max=255"`
	IsCompleted bool   `json:"is_completed"`
}

type CreateTodoRequest struct {
	Title    string           `json:"title" validate:"required,max=255"`
	DueDate  *time.Time       `json:"due_date"`
	IsPinned bool             `json:"is_pinned"`
	Tasks    []CreateTaskItem `json:"tasks" validate:"dive"`
}

type UpdateTodoRequest struct {
	Id         uuid.UUID  `json:"-"`
	Title      *string    `json:"title" validate:"omitempty,max=255"`
	DueDate    *time.Time `json:"due_date"`
	Completed  *bool      `json:"completed"`
	IsPinned   *bool      `json:"is_pinned"`
	IsArchived *bool      `json:"is_archived"`
	IsTrash    *bool      `json:"is_trash"`
}

type TodoResponse struct {
	Id         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	DueDate    *time.Time      `json:"due_date"`
	Completed  bool            `json:"completed"`
	IsPinned   bool            `json:"is_pinned"`
	IsArchived bool            `json:"is_archived"`
	IsTrash    bool            `json:"is_trash"`
	UserId     uuid.UUID       `json:"user_id"`
	Tasks      []*TaskResponse `json:"tasks"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at"`
}

type TodoListResponse struct {
	Todos      []*TodoResponse `json:"todos"`
	Pagination Pagination      `json:"pagination"`
}
