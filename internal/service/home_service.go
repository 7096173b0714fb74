package service

import (
	"context"
	"strings"

	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/logger"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/memory"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/unitofwork"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/cache"

	"github.com/google/uuid"
)

const pinnedShelfSize = 10

type IHomeService interface {
	Dashboard(ctx context.Context, userId uuid.UUID, req *dto.DashboardRequest) (*dto.DashboardResponse, error)
	Search(ctx context.Context, userId uuid.UUID, req *dto.SearchRequest) (*dto.SearchResponse, error)
	Pinned(ctx context.Context, userId uuid.UUID) (*dto.PinnedItemsResponse, error)
}

type homeService struct {
	uowFactory  unitofwork.RepositoryFactory
	pinnedCache *memory.PinnedCache
	searchCache *cache.SearchCache
	log         logger.ILogger
}

func NewHomeService(
	uowFactory unitofwork.RepositoryFactory,
	pinnedCache *memory.PinnedCache,
	searchCache *cache.SearchCache,
	log logger.ILogger,
) IHomeService {
	return &homeService{
		uowFactory:  uowFactory,
		pinnedCache: pinnedCache,
		searchCache: searchCache,
		log:         log,
	}
}

func wantsNotes(t string) bool { return t == "" || t == "all" || t == "notes" }
func wantsTodos(t string) bool { return t == "" || t == "all" || t == "todos" }

func (s *homeService) Dashboard(ctx context.Context, userId uuid.UUID, req *dto.DashboardRequest) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	shelf, err := s.pinnedShelf(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	req.Page, req.Limit = normalizePaging(req.Page, req.Limit, dto.DefaultLimit)
	itemType := strings.ToLower(req.Type)
	keyword := strings.TrimSpace(req.Keyword)
	offset := (req.Page - 1) * req.Limit

	res := &dto.DashboardResponse{
		Pinned: *shelf,
		Items: dto.DashboardItems{
			Notes: []*dto.NoteResponse{},
			Todos: []*dto.TodoResponse{},
		},
		Pagination: dto.DashboardPagination{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}

	if wantsNotes(itemType) {
		specs := []specification.Specification{
			specification.UserOwnedBy{UserID: userId},
			specification.ByCategory{Category: specification.CategoryActive},
		}
		if keyword != "" {
			specs = append(specs, specification.NoteKeyword{Keyword: keyword})
		}

		total, err := uow.NoteRepository().Count(ctx, specs...)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		notes, err := uow.NoteRepository().FindAll(ctx, append(specs,
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: req.Limit, Offset: offset},
		)...)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}

		pages := totalPages(total, req.Limit)
		res.Items.Notes = toNoteResponses(notes)
		res.Pagination.TotalNotes = &total
		res.Pagination.TotalPages.Notes = &pages
	}

	if wantsTodos(itemType) {
		specs := []specification.Specification{
			specification.UserOwnedBy{UserID: userId},
			specification.ByCategory{Category: specification.CategoryActive},
		}
		if keyword != "" {
			specs = append(specs, specification.TitleKeyword{Keyword: keyword})
		}

		total, err := uow.TodoRepository().Count(ctx, specs...)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		todos, err := uow.TodoRepository().FindAll(ctx, append(specs,
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: req.Limit, Offset: offset},
		)...)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}

		pages := totalPages(total, req.Limit)
		res.Items.Todos = toTodoResponses(todos)
		res.Pagination.TotalTodos = &total
		res.Pagination.TotalPages.Todos = &pages
	}

	return res, nil
}

// Search runs the same limit/offset against each entity independently and
// reports a combined total. A page can therefore hold up to 2*limit rows;
// observable behavior preserved from the original API.
func (s *homeService) Search(ctx context.Context, userId uuid.UUID, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return nil, apperr.BadRequest("Keyword is required")
	}
	req.Page, req.Limit = normalizePaging(req.Page, req.Limit, dto.DefaultSearchLimit)

	if cached, err := s.searchCache.Get(ctx, userId, req); err != nil {
		s.log.Warn("home", "Search cache read failed", map[string]interface{}{"error": err.Error()})
	} else if cached != nil {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	itemType := strings.ToLower(req.Type)
	category := specification.ParseCategory(req.Category)
	offset := (req.Page - 1) * req.Limit

	res := &dto.SearchResponse{
		Notes: []*dto.NoteResponse{},
		Todos: []*dto.TodoResponse{},
		Search: dto.SearchEcho{
			Keyword:  keyword,
			Type:     itemTypeEcho(req.Type),
			Category: string(category),
		},
	}

	var totalNotes, totalTodos int64

	if wantsNotes(itemType) {
		specs := []specification.Specification{
			specification.UserOwnedBy{UserID: userId},
			specification.ByCategory{Category: category},
			specification.NoteKeyword{Keyword: keyword},
		}
		total, err := uow.NoteRepository().Count(ctx, specs...)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		notes, err := uow.NoteRepository().FindAll(ctx, append(specs,
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: req.Limit, Offset: offset},
		)...)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		totalNotes = total
		res.Notes = toNoteResponses(notes)
	}

	if wantsTodos(itemType) {
		specs := []specification.Specification{
			specification.UserOwnedBy{UserID: userId},
			specification.ByCategory{Category: category},
			specification.TitleKeyword{Keyword: keyword},
		}
		total, err := uow.TodoRepository().Count(ctx, specs...)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		todos, err := uow.TodoRepository().FindAll(ctx, append(specs,
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: req.Limit, Offset: offset},
		)...)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		totalTodos = total
		res.Todos = toTodoResponses(todos)
	}

	totalItems := totalNotes + totalTodos
	res.Pagination = dto.SearchPagination{
		Page:       req.Page,
		Limit:      req.Limit,
		TotalItems: totalItems,
		TotalPages: totalPages(totalItems, req.Limit),
		TotalNotes: totalNotes,
		TotalTodos: totalTodos,
	}

	if err := s.searchCache.Set(ctx, userId, req, res); err != nil {
		s.log.Warn("home", "Search cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return res, nil
}

func (s *homeService) Pinned(ctx context.Context, userId uuid.UUID) (*dto.PinnedItemsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByCategory{Category: specification.CategoryPinned},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	todos, err := uow.TodoRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByCategory{Category: specification.CategoryPinned},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	return &dto.PinnedItemsResponse{
		Notes: toNoteResponses(notes),
		Todos: toTodoResponses(todos),
	}, nil
}

// pinnedShelf returns the dashboard's capped pinned shelf, served from the
// in-process cache when warm.
func (s *homeService) pinnedShelf(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*dto.PinnedItemsResponse, error) {
	if items, found := s.pinnedCache.Get(userId); found {
		return &dto.PinnedItemsResponse{
			Notes: toNoteResponses(items.Notes),
			Todos: toTodoResponses(items.Todos),
		}, nil
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByCategory{Category: specification.CategoryPinned},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pinnedShelfSize, Offset: 0},
	)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	todos, err := uow.TodoRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByCategory{Category: specification.CategoryPinned},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pinnedShelfSize, Offset: 0},
	)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.pinnedCache.Set(userId, &memory.PinnedItems{Notes: notes, Todos: todos})

	return &dto.PinnedItemsResponse{
		Notes: toNoteResponses(notes),
		Todos: toTodoResponses(todos),
	}, nil
}

// itemTypeEcho reflects the requested type back as-is; only an absent
// value collapses to the "all" default.
func itemTypeEcho(t string) string {
	if t == "" {
		return "all"
	}
	return t
}

// normalizePaging guards the offset and page-count math against
// non-positive inputs. Controllers clamp their query params too, but the
// service cannot assume every caller did.
func normalizePaging(page, limit, fallbackLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = fallbackLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
