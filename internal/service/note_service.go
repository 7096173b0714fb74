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

type INoteService interface {
	List(ctx context.Context, userId uuid.UUID, category specification.Category, query dto.ListQuery) (*dto.NoteListResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Archive(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Unarchive(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	TogglePin(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	pinnedCache      *memory.PinnedCache
	searchCache      *cache.SearchCache
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	pinnedCache *memory.PinnedCache,
	searchCache *cache.SearchCache,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		pinnedCache:      pinnedCache,
		searchCache:      searchCache,
		log:              log,
	}
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, category specification.Category, query dto.ListQuery) (*dto.NoteListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	base := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.ByCategory{Category: category},
	}

	total, err := uow.NoteRepository().Count(ctx, base...)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	specs := append(base,
		specification.OrderBy{Field: query.SortBy, Desc: query.Desc()},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	return &dto.NoteListResponse{
		Notes:      toNoteResponses(notes),
		Pagination: dto.NewPagination(query.Page, query.Limit, total),
	}, nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	state := entity.LifecycleActive
	if req.IsPinned {
		state = entity.LifecyclePinned
	}

	note := &entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		UserId:    userId,
		State:     state,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.afterWrite(ctx, constant.EventNoteCreated, note)

	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	// Lifecycle flags merge over the current placement, then collapse back
	// into a single state.
	pinned, archived, trashed := note.State.Flags()
	if req.IsPinned != nil {
		pinned = *req.IsPinned
	}
	if req.IsArchived != nil {
		archived = *req.IsArchived
	}
	if req.IsTrash != nil {
		trashed = *req.IsTrash
	}
	note.State = entity.LifecycleFromFlags(pinned, archived, trashed)

	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.afterWrite(ctx, constant.EventNoteUpdated, note)

	return toNoteResponse(note), nil
}

func (s *noteService) Archive(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	return s.transition(ctx, userId, id, constant.EventNoteArchived, entity.Lifecycle.Archive)
}

func (s *noteService) Unarchive(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	return s.transition(ctx, userId, id, constant.EventNoteRestored, entity.Lifecycle.Unarchive)
}

func (s *noteService) Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	return s.transition(ctx, userId, id, constant.EventNoteTrashed, entity.Lifecycle.Trash)
}

func (s *noteService) Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	return s.transition(ctx, userId, id, constant.EventNoteRestored, entity.Lifecycle.Restore)
}

func (s *noteService) TogglePin(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	return s.transition(ctx, userId, id, constant.EventNotePinToggle, entity.Lifecycle.TogglePin)
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return apperr.Unexpected(err)
	}

	s.afterWrite(ctx, constant.EventNoteDeleted, note)

	return nil
}

func (s *noteService) transition(ctx context.Context, userId, id uuid.UUID, eventType string, next func(entity.Lifecycle) entity.Lifecycle) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	note.State = next(note.State)
	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.afterWrite(ctx, eventType, note)

	return toNoteResponse(note), nil
}

func (s *noteService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if note == nil {
		return nil, apperr.NotFound("Note")
	}
	return note, nil
}

// afterWrite drops the owner's caches and emits the activity event.
func (s *noteService) afterWrite(ctx context.Context, eventType string, note *entity.Note) {
	if s.pinnedCache != nil {
		s.pinnedCache.Invalidate(note.UserId)
	}
	if s.searchCache != nil {
		if err := s.searchCache.Invalidate(ctx, note.UserId); err != nil {
			s.log.Warn("note", "Failed to invalidate search cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if s.publisherService != nil {
		evt := events.NewItemEvent(eventType, constant.ItemTypeNote, note.Id, note.UserId)
		if err := s.publisherService.Publish(ctx, evt); err != nil {
			s.log.Warn("note", "Failed to publish activity event", map[string]interface{}{
				"type":  eventType,
				"error": err.Error(),
			})
		}
	}
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	pinned, archived, trashed := note.State.Flags()
	return &dto.NoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		Content:    note.Content,
		IsPinned:   pinned,
		IsArchived: archived,
		IsTrash:    trashed,
		UserId:     note.UserId,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
}

func toNoteResponses(notes []*entity.Note) []*dto.NoteResponse {
	out := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	return out
}
