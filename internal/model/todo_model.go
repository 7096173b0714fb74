package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Todo struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string          `gorm:"type:varchar(255);not null"`
	Completed  bool            `gorm:"not null;default:false"`
	DueDate    *datatypes.Date `gorm:"column:due_date"`
	IsPinned   bool            `gorm:"not null;default:false"`
	IsArchived bool            `gorm:"not null;default:false"`
	IsTrash    bool            `gorm:"not null;default:false"`
	UserId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`

	Tasks []Task `gorm:"foreignKey:TodoId;constraint:OnDelete:CASCADE"`
}

func (Todo) TableName() string {
	return "todos"
}

type Task struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	IsCompleted bool      `gorm:"not null;default:false"`
	TodoId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}
