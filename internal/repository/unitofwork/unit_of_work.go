package unitofwork

import (
	"context"

	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	TodoRepository() contract.TodoRepository
	TaskRepository() contract.TaskRepository
}
