package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error
	Update(ctx context.Context, todo *entity.Todo) error
	// Delete removes the todo permanently; tasks cascade via FK.
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Todo, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Todo, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
