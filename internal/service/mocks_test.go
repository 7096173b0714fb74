package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/contract"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/unitofwork"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/events"
)

// stubFactory hands the same unit of work to every caller.
type stubFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type mockUnitOfWork struct {
	mock.Mock
	users contract.UserRepository
	notes contract.NoteRepository
	todos contract.TodoRepository
	tasks contract.TaskRepository
}

func (m *mockUnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) Commit() error {
	return m.Called().Error(0)
}

func (m *mockUnitOfWork) Rollback() error {
	return m.Called().Error(0)
}

func (m *mockUnitOfWork) UserRepository() contract.UserRepository { return m.users }
func (m *mockUnitOfWork) NoteRepository() contract.NoteRepository { return m.notes }
func (m *mockUnitOfWork) TodoRepository() contract.TodoRepository { return m.todos }
func (m *mockUnitOfWork) TaskRepository() contract.TaskRepository { return m.tasks }

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNoteRepository) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return m.Called(ctx, userId).Error(0)
}

func (m *mockNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.(*entity.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.([]*entity.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type mockTodoRepository struct {
	mock.Mock
}

func (m *mockTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *mockTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *mockTodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTodoRepository) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return m.Called(ctx, userId).Error(0)
}

func (m *mockTodoRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Todo, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.(*entity.Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Todo, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.([]*entity.Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskRepository) CreateBatch(ctx context.Context, tasks []*entity.Task) error {
	return m.Called(ctx, tasks).Error(0)
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTaskRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Task, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.(*entity.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.([]*entity.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	return m.Called(ctx, event).Error(0)
}

// nopLogger satisfies logger.ILogger without touching the filesystem.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
