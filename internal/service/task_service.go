package service

import (
	"context"
	"time"

	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITaskService interface {
	List(ctx context.Context, userId uuid.UUID, todoId *uuid.UUID) ([]*dto.TaskResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TaskResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

// taskService resolves ownership through the parent todo on every
// operation; tasks carry no owner column of their own.
type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{uowFactory: uowFactory}
}

// List returns the caller's tasks newest first, across all todos. The
// join scopes the result to the owner, so a foreign todoId filter simply
// matches nothing.
func (s *taskService) List(ctx context.Context, userId uuid.UUID, todoId *uuid.UUID) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.TaskOwnedThroughTodo{UserID: userId},
		specification.OrderBy{Field: "tasks.created_at", Desc: true},
	}
	if todoId != nil {
		specs = append(specs, specification.ByTodoID{TodoID: *todoId})
	}

	tasks, err := uow.TaskRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

func (s *taskService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func (s *taskService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	todo, err := uow.TodoRepository().FindOne(ctx,
		specification.ByID{ID: req.TodoId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if todo == nil {
		return nil, apperr.NotFound("Todo")
	}

	task := &entity.Task{
		Id:        uuid.New(),
		Title:     req.Title,
		TodoId:    todo.Id,
		CreatedAt: time.Now(),
	}

	if err := uow.TaskRepository().Create(ctx, task); err != nil {
		return nil, apperr.Unexpected(err)
	}

	return toTaskResponse(task), nil
}

func (s *taskService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	now := time.Now()
	task.UpdatedAt = &now

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, apperr.Unexpected(err)
	}

	return toTaskResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.TaskRepository().Delete(ctx, task.Id); err != nil {
		return apperr.Unexpected(err)
	}

	return nil
}

func (s *taskService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Task, error) {
	task, err := uow.TaskRepository().FindOne(ctx,
		specification.TaskByID{ID: id},
		specification.TaskOwnedThroughTodo{UserID: userId},
	)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if task == nil {
		return nil, apperr.NotFound("Task")
	}
	return task, nil
}

func toTaskResponse(task *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:          task.Id,
		Title:       task.Title,
		IsCompleted: task.IsCompleted,
		TodoId:      task.TodoId,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
