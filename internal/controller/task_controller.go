package controller

import (
	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/serverutils"
	"github.com/DeDsEC-7/NoteNest-Api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router)
}

type taskController struct {
	taskService    service.ITaskService
	authMiddleware fiber.Handler
}

func NewTaskController(taskService service.ITaskService, authMiddleware fiber.Handler) ITaskController {
	return &taskController{
		taskService:    taskService,
		authMiddleware: authMiddleware,
	}
}

func (c *taskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/task/v1")
	h.Use(c.authMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *taskController) List(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	// todoId narrows the listing to one todo; absent means all tasks.
	var todoId *uuid.UUID
	if raw := ctx.Query("todoId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return apperr.BadRequest("Invalid todoId")
		}
		todoId = &parsed
	}

	res, err := c.taskService.List(ctx.Context(), userId, todoId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tasks", res))
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create task", res))
}

func (c *taskController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.taskService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show task", res))
}

func (c *taskController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update task", res))
}

func (c *taskController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.taskService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete task", nil))
}
