package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
)

func newTaskFixture() (*mockTodoRepository, *mockTaskRepository, ITaskService) {
	todos := new(mockTodoRepository)
	tasks := new(mockTaskRepository)
	uow := &mockUnitOfWork{todos: todos, tasks: tasks}
	return todos, tasks, NewTaskService(&stubFactory{uow: uow})
}

func TestTaskCreateRequiresOwnedTodo(t *testing.T) {
	todos, tasks, svc := newTaskFixture()

	// Parent todo belongs to someone else.
	todos.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateTaskRequest{
		Title:  "sneaky",
		TodoId: uuid.New(),
	})
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
	tasks.AssertNotCalled(t, "Create")
}

func TestTaskCreate(t *testing.T) {
	todos, tasks, svc := newTaskFixture()
	userId := uuid.New()
	todo := &entity.Todo{Id: uuid.New(), UserId: userId}

	todos.On("FindOne", mock.Anything, mock.Anything).Return(todo, nil)
	tasks.On("Create", mock.Anything, mock.MatchedBy(func(x *entity.Task) bool {
		return x.TodoId == todo.Id && x.Title == "water plants"
	})).Return(nil)

	res, err := svc.Create(context.Background(), userId, &dto.CreateTaskRequest{
		Title:  "water plants",
		TodoId: todo.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, todo.Id, res.TodoId)
	assert.False(t, res.IsCompleted)
}

func TestTaskUpdateToggleCompletion(t *testing.T) {
	_, tasks, svc := newTaskFixture()
	userId := uuid.New()
	task := &entity.Task{Id: uuid.New(), Title: "done soon", TodoId: uuid.New()}

	tasks.On("FindOne", mock.Anything, mock.Anything).Return(task, nil)
	tasks.On("Update", mock.Anything, mock.MatchedBy(func(x *entity.Task) bool {
		return x.IsCompleted
	})).Return(nil)

	done := true
	res, err := svc.Update(context.Background(), userId, &dto.UpdateTaskRequest{
		Id:          task.Id,
		IsCompleted: &done,
	})
	require.NoError(t, err)
	assert.True(t, res.IsCompleted)
	assert.Equal(t, "done soon", res.Title)
}

func TestTaskShowForeignOwnerIsNotFound(t *testing.T) {
	_, tasks, svc := newTaskFixture()

	tasks.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.Show(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func hasTodoFilter(specs []specification.Specification, want uuid.UUID) bool {
	for _, s := range specs {
		if f, ok := s.(specification.ByTodoID); ok && f.TodoID == want {
			return true
		}
	}
	return false
}

func newestFirst(specs []specification.Specification) bool {
	for _, s := range specs {
		if o, ok := s.(specification.OrderBy); ok {
			return o.Field == "tasks.created_at" && o.Desc
		}
	}
	return false
}

func TestTaskListAllAcrossTodos(t *testing.T) {
	todos, tasks, svc := newTaskFixture()
	userId := uuid.New()

	tasks.On("FindAll", mock.Anything, mock.MatchedBy(func(specs []specification.Specification) bool {
		for _, s := range specs {
			if _, ok := s.(specification.ByTodoID); ok {
				return false
			}
		}
		return newestFirst(specs)
	})).Return([]*entity.Task{
		{Id: uuid.New(), Title: "one", TodoId: uuid.New()},
		{Id: uuid.New(), Title: "two", TodoId: uuid.New()},
	}, nil)

	res, err := svc.List(context.Background(), userId, nil)
	require.NoError(t, err)
	assert.Len(t, res, 2)
	todos.AssertNotCalled(t, "FindOne")
}

func TestTaskListFilteredByTodo(t *testing.T) {
	_, tasks, svc := newTaskFixture()
	todoId := uuid.New()

	tasks.On("FindAll", mock.Anything, mock.MatchedBy(func(specs []specification.Specification) bool {
		return hasTodoFilter(specs, todoId) && newestFirst(specs)
	})).Return([]*entity.Task{
		{Id: uuid.New(), Title: "only mine", TodoId: todoId},
	}, nil)

	res, err := svc.List(context.Background(), uuid.New(), &todoId)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, todoId, res[0].TodoId)
}

func TestTaskListForeignTodoIsEmpty(t *testing.T) {
	// The ownership join filters out foreign todos; the caller sees an
	// empty list, not an error.
	_, tasks, svc := newTaskFixture()

	tasks.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.Task{}, nil)

	foreign := uuid.New()
	res, err := svc.List(context.Background(), uuid.New(), &foreign)
	require.NoError(t, err)
	assert.Empty(t, res)
}
