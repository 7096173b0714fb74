package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Firstname    string
	Lastname     string
	Email        string
	PasswordHash string
	Phone        *string
	Autosave     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
