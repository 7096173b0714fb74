package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/memory"
)

func newTodoFixture() (*mockTodoRepository, *mockTaskRepository, *mockUnitOfWork, ITodoService) {
	todos := new(mockTodoRepository)
	tasks := new(mockTaskRepository)
	uow := &mockUnitOfWork{todos: todos, tasks: tasks}
	svc := NewTodoService(&stubFactory{uow: uow}, nil, memory.NewPinnedCache(), nil, nopLogger{})
	return todos, tasks, uow, svc
}

func TestTodoCreateWithTasksIsTransactional(t *testing.T) {
	todos, tasks, uow, svc := newTodoFixture()
	userId := uuid.New()

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit").Return(nil)
	uow.On("Rollback").Return(nil)
	todos.On("Create", mock.Anything, mock.Anything).Return(nil)
	tasks.On("CreateBatch", mock.Anything, mock.MatchedBy(func(ts []*entity.Task) bool {
		return len(ts) == 2 && ts[0].Title == "buy ingredients"
	})).Return(nil)

	res, err := svc.Create(context.Background(), userId, &dto.CreateTodoRequest{
		Title: "dinner party",
		Tasks: []dto.CreateTaskItem{
			{Title: "buy ingredients"},
			{Title: "cook", IsCompleted: false},
		},
	})
	require.NoError(t, err)
	assert.Len(t, res.Tasks, 2)
	uow.AssertCalled(t, "Commit")
}

func TestTodoCreateRollsBackWhenTaskInsertFails(t *testing.T) {
	todos, tasks, uow, svc := newTodoFixture()

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback").Return(nil)
	todos.On("Create", mock.Anything, mock.Anything).Return(nil)
	tasks.On("CreateBatch", mock.Anything, mock.Anything).Return(errors.New("constraint violation"))

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateTodoRequest{
		Title: "doomed",
		Tasks: []dto.CreateTaskItem{{Title: "never lands"}},
	})
	require.Error(t, err)
	uow.AssertCalled(t, "Rollback")
	uow.AssertNotCalled(t, "Commit")
}

func TestTodoCreateWithoutTasksSkipsBatch(t *testing.T) {
	todos, tasks, uow, svc := newTodoFixture()

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit").Return(nil)
	uow.On("Rollback").Return(nil)
	todos.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Create(context.Background(), uuid.New(), &dto.CreateTodoRequest{Title: "solo"})
	require.NoError(t, err)
	assert.Empty(t, res.Tasks)
	tasks.AssertNotCalled(t, "CreateBatch")
}

func TestTodoTrashDropsPin(t *testing.T) {
	todos, _, _, svc := newTodoFixture()
	userId := uuid.New()
	todo := &entity.Todo{Id: uuid.New(), UserId: userId, State: entity.LifecyclePinned}

	todos.On("FindOne", mock.Anything, mock.Anything).Return(todo, nil)
	todos.On("Update", mock.Anything, mock.MatchedBy(func(x *entity.Todo) bool {
		return x.State == entity.LifecycleTrashed
	})).Return(nil)

	res, err := svc.Trash(context.Background(), userId, todo.Id)
	require.NoError(t, err)
	assert.True(t, res.IsTrash)
	assert.False(t, res.IsPinned)
}

func TestTodoUpdateForeignOwnerIsNotFound(t *testing.T) {
	todos, _, _, svc := newTodoFixture()

	todos.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateTodoRequest{Id: uuid.New()})
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestTodoRestoreOnlyActsOnTrashed(t *testing.T) {
	todos, _, _, svc := newTodoFixture()
	userId := uuid.New()
	todo := &entity.Todo{Id: uuid.New(), UserId: userId, State: entity.LifecycleArchived}

	todos.On("FindOne", mock.Anything, mock.Anything).Return(todo, nil)
	todos.On("Update", mock.Anything, mock.MatchedBy(func(x *entity.Todo) bool {
		return x.State == entity.LifecycleArchived
	})).Return(nil)

	res, err := svc.Restore(context.Background(), userId, todo.Id)
	require.NoError(t, err)
	assert.True(t, res.IsArchived, "restore must not touch an archived todo")
}
