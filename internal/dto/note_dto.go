package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content"`
	IsPinned bool   `json:"is_pinned"`
}

// UpdateNoteRequest is a whitelisted field merge: nil pointers leave the
// stored value untouched. Lifecycle flags may be set directly here, the
// same way the dedicated action endpoints set them.
type UpdateNoteRequest struct {
	Id         uuid.UUID `json:"-"`
	Title      *string   `json:"title" validate:"omitempty,max=255"`
	Content    *string   `json:"content"`
	IsPinned   *bool     `json:"is_pinned"`
	IsArchived *bool     `json:"is_archived"`
	IsTrash    *bool     `json:"is_trash"`
}

type NoteResponse struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	IsPinned   bool       `json:"is_pinned"`
	IsArchived bool       `json:"is_archived"`
	IsTrash    bool       `json:"is_trash"`
	UserId     uuid.UUID  `json:"user_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type NoteListResponse struct {
	Notes      []*NoteResponse `json:"notes"`
	Pagination Pagination      `json:"pagination"`
}
