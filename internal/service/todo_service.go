package service

import (
	"context"
	"time"

	"github.com/DeDsEC-7/NoteNest-Api/internal/constant"
	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/logger"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/memory"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/unitofwork"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/cache"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/events"

	"github.com/google/uuid"
)

type ITodoService interface {
	List(ctx context.Context, userId uuid.UUID, category specification.Category, query dto.ListQuery) (*dto.TodoListResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTodoRequest) (*dto.TodoResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTodoRequest) (*dto.TodoResponse, error)
	Archive(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error)
	Unarchive(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error)
	Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error)
	Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error)
	TogglePin(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type todoService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	pinnedCache      *memory.PinnedCache
	searchCache      *cache.SearchCache
	log              logger.ILogger
}

func NewTodoService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	pinnedCache *memory.PinnedCache,
	searchCache *cache.SearchCache,
	log logger.ILogger,
) ITodoService {
	return &todoService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		pinnedCache:      pinnedCache,
		searchCache:      searchCache,
		log:              log,
	}
}

func (s *todoService) List(ctx context.Context, userId uuid.UUID, category specification.Category, query dto.ListQuery) (*dto.TodoListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	base := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.ByCategory{Category: category},
	}

	total, err := uow.TodoRepository().Count(ctx, base...)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	specs := append(base,
		specification.OrderBy{Field: query.SortBy, Desc: query.Desc()},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	todos, err := uow.TodoRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	return &dto.TodoListResponse{
		Todos:      toTodoResponses(todos),
		Pagination: dto.NewPagination(query.Page, query.Limit, total),
	}, nil
}

func (s *todoService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	todo, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toTodoResponse(todo), nil
}

// Create inserts the parent todo together with its initial tasks in one
// transaction. Either everything lands or nothing does.
func (s *todoService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTodoRequest) (*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	state := entity.LifecycleActive
	if req.IsPinned {
		state = entity.LifecyclePinned
	}

	now := time.Now()
	todo := &entity.Todo{
		Id:        uuid.New(),
		Title:     req.Title,
		DueDate:   req.DueDate,
		UserId:    userId,
		State:     state,
		CreatedAt: now,
	}

	tasks := make([]*entity.Task, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		tasks = append(tasks, &entity.Task{
			Id:          uuid.New(),
			Title:       t.Title,
			IsCompleted: t.IsCompleted,
			TodoId:      todo.Id,
			CreatedAt:   now,
		})
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Unexpected(err)
	}
	defer uow.Rollback()

	if err := uow.TodoRepository().Create(ctx, todo); err != nil {
		return nil, apperr.Unexpected(err)
	}
	if len(tasks) > 0 {
		if err := uow.TaskRepository().CreateBatch(ctx, tasks); err != nil {
			return nil, apperr.Unexpected(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Unexpected(err)
	}

	todo.Tasks = tasks
	s.afterWrite(ctx, constant.EventTodoCreated, todo)

	return toTodoResponse(todo), nil
}

func (s *todoService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTodoRequest) (*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	todo, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	pinned, archived, trashed := todo.State.Flags()
	if req.IsPinned != nil {
		pinned = *req.IsPinned
	}
	if req.IsArchived != nil {
		archived = *req.IsArchived
	}
	if req.IsTrash != nil {
		trashed = *req.IsTrash
	}
	todo.State = entity.LifecycleFromFlags(pinned, archived, trashed)

	now := time.Now()
	todo.UpdatedAt = &now

	if err := uow.TodoRepository().Update(ctx, todo); err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.afterWrite(ctx, constant.EventTodoUpdated, todo)

	return toTodoResponse(todo), nil
}

func (s *todoService) Archive(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error) {
	return s.transition(ctx, userId, id, constant.EventTodoArchived, entity.Lifecycle.Archive)
}

func (s *todoService) Unarchive(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error) {
	return s.transition(ctx, userId, id, constant.EventTodoRestored, entity.Lifecycle.Unarchive)
}

func (s *todoService) Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error) {
	return s.transition(ctx, userId, id, constant.EventTodoTrashed, entity.Lifecycle.Trash)
}

func (s *todoService) Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error) {
	return s.transition(ctx, userId, id, constant.EventTodoRestored, entity.Lifecycle.Restore)
}

func (s *todoService) TogglePin(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TodoResponse, error) {
	return s.transition(ctx, userId, id, constant.EventTodoPinToggle, entity.Lifecycle.TogglePin)
}

// Delete removes the todo permanently; tasks go with it via the FK cascade.
func (s *todoService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	todo, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.TodoRepository().Delete(ctx, todo.Id); err != nil {
		return apperr.Unexpected(err)
	}

	s.afterWrite(ctx, constant.EventTodoDeleted, todo)

	return nil
}

func (s *todoService) transition(ctx context.Context, userId, id uuid.UUID, eventType string, next func(entity.Lifecycle) entity.Lifecycle) (*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	todo, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	todo.State = next(todo.State)
	now := time.Now()
	todo.UpdatedAt = &now

	if err := uow.TodoRepository().Update(ctx, todo); err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.afterWrite(ctx, eventType, todo)

	return toTodoResponse(todo), nil
}

func (s *todoService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Todo, error) {
	todo, err := uow.TodoRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if todo == nil {
		return nil, apperr.NotFound("Todo")
	}
	return todo, nil
}

func (s *todoService) afterWrite(ctx context.Context, eventType string, todo *entity.Todo) {
	if s.pinnedCache != nil {
		s.pinnedCache.Invalidate(todo.UserId)
	}
	if s.searchCache != nil {
		if err := s.searchCache.Invalidate(ctx, todo.UserId); err != nil {
			s.log.Warn("todo", "Failed to invalidate search cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if s.publisherService != nil {
		evt := events.NewItemEvent(eventType, constant.ItemTypeTodo, todo.Id, todo.UserId)
		if err := s.publisherService.Publish(ctx, evt); err != nil {
			s.log.Warn("todo", "Failed to publish activity event", map[string]interface{}{
				"type":  eventType,
				"error": err.Error(),
			})
		}
	}
}

func toTodoResponse(todo *entity.Todo) *dto.TodoResponse {
	pinned, archived, trashed := todo.State.Flags()
	tasks := make([]*dto.TaskResponse, 0, len(todo.Tasks))
	for _, t := range todo.Tasks {
		tasks = append(tasks, toTaskResponse(t))
	}
	return &dto.TodoResponse{
		Id:         todo.Id,
		Title:      todo.Title,
		DueDate:    todo.DueDate,
		Completed:  todo.Completed,
		IsPinned:   pinned,
		IsArchived: archived,
		IsTrash:    trashed,
		UserId:     todo.UserId,
		Tasks:      tasks,
		CreatedAt:  todo.CreatedAt,
		UpdatedAt:  todo.UpdatedAt,
	}
}

func toTodoResponses(todos []*entity.Todo) []*dto.TodoResponse {
	out := make([]*dto.TodoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(t))
	}
	return out
}
