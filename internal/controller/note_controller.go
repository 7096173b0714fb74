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

type INoteController interface {
	RegisterRoutes(r fiber.Router)
}

type noteController struct {
	noteService    service.INoteService
	authMiddleware fiber.Handler
}

func NewNoteController(noteService service.INoteService, authMiddleware fiber.Handler) INoteController {
	return &noteController{
		noteService:    noteService,
		authMiddleware: authMiddleware,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
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

func (c *noteController) listCategory(category specification.Category) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId := serverutils.CallerID(ctx)

		query := parseListQuery(ctx)
		if err := query.Normalize(dto.NoteSortFields...); err != nil {
			return apperr.BadRequest(err.Error())
		}

		res, err := c.noteService.List(ctx.Context(), userId, category, query)
		if err != nil {
			return err
		}

		return ctx.JSON(serverutils.SuccessListResponse("Success list notes", res.Notes, res.Pagination))
	}
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Archive(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.noteService.Archive, "Success archive note")
}

func (c *noteController) Unarchive(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.noteService.Unarchive, "Success unarchive note")
}

func (c *noteController) Trash(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.noteService.Trash, "Success trash note")
}

func (c *noteController) Restore(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.noteService.Restore, "Success restore note")
}

func (c *noteController) TogglePin(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.noteService.TogglePin, "Success toggle pin note")
}

// transition handles the lifecycle actions, which only differ in the
// service method and success message.
func (c *noteController) transition(ctx *fiber.Ctx, fn func(context.Context, uuid.UUID, uuid.UUID) (*dto.NoteResponse, error), message string) error {
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

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func parseIDParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid id")
	}
	return id, nil
}

func parseListQuery(ctx *fiber.Ctx) dto.ListQuery {
	return dto.ListQuery{
		Page:      ctx.QueryInt("page", dto.DefaultPage),
		Limit:     ctx.QueryInt("limit", dto.DefaultLimit),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
	}
}
