package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	CreateBatch(ctx context.Context, tasks []*entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Task, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error)
}
