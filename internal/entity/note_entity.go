package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	UserId    uuid.UUID
	State     Lifecycle
	CreatedAt time.Time
	UpdatedAt *time.Time
}
