package controller

import (
	"context"

	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/serverutils"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
	"github.com/DeDsEC-7/NoteNest-Api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITodoController interface {
	RegisterRoutes(r fiber.Router)
}

type todoController struct {
	todoService    service.ITodoService
	authMiddleware fiber.Handler
}

func NewTodoController(todoService service.ITodoService, authMiddleware fiber.Handler) ITodoController {
	return &todoController{
		todoService:    todoService,
		authMiddleware: authMiddleware,
	}
}

func (c *todoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/todo/v1")
	h.Use(c.authMiddleware)
	h.Get("", c.listCategory(specification.CategoryActive))
	h.Get("archived", c.listCategory(specification.CategoryArchived))
	h.Get("trashed", c.listCategory(specification.CategoryTrashed))
	h.Get("pinned", c.listCategory(specification.CategoryPinned))
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Put(":id/archive", c.Archive)
	h.Put(":id/unarchive", c.Unarchive)
	h.Put(":id/trash", c.Trash)
	h.Put(":id/restore", c.Restore)
	h.Put(":id/toggle-pin", c.TogglePin)
	h.Delete(":id", c.Delete)
}

func (c *todoController) listCategory(category specification.Category) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId := serverutils.CallerID(ctx)

		query := parseListQuery(ctx)
		if err := query.Normalize(dto.TodoSortFields...); err != nil {
			return apperr.BadRequest(err.Error())
		}

		res, err := c.todoService.List(ctx.Context(), userId, category, query)
		if err != nil {
			return err
		}

		return ctx.JSON(serverutils.SuccessListResponse("Success list todos", res.Todos, res.Pagination))
	}
}

func (c *todoController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	var req dto.CreateTodoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.todoService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create todo", res))
}

func (c *todoController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.todoService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show todo", res))
}

func (c *todoController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTodoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.todoService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update todo", res))
}

func (c *todoController) Archive(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.todoService.Archive, "Success archive todo")
}

func (c *todoController) Unarchive(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.todoService.Unarchive, "Success unarchive todo")
}

func (c *todoController) Trash(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.todoService.Trash, "Success trash todo")
}

func (c *todoController) Restore(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.todoService.Restore, "Success restore todo")
}

func (c *todoController) TogglePin(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.todoService.TogglePin, "Success toggle pin todo")
}

func (c *todoController) transition(ctx *fiber.Ctx, fn func(context.Context, uuid.UUID, uuid.UUID) (*dto.TodoResponse, error), message string) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := fn(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *todoController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.todoService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete todo", nil))
}
