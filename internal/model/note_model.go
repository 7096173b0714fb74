package model

import (
	"time"

	"github.com/google/uuid"
)

// Note keeps the lifecycle as three boolean columns for wire and schema
// compatibility. The columns are NOT mutually exclusive at the schema
// level; the mapper normalizes them into entity.Lifecycle on read and
// writes them back canonically, so the engine enforces exclusivity at
// write time.
type Note struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text"`
	IsPinned   bool      `gorm:"not null;default:false"`
	IsArchived bool      `gorm:"not null;default:false"`
	IsTrash    bool      `gorm:"not null;default:false"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
