package controller

import (
	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/serverutils"
	"github.com/DeDsEC-7/NoteNest-Api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
}

type authController struct {
	authService    service.IAuthService
	authMiddleware fiber.Handler
}

func NewAuthController(authService service.IAuthService, authMiddleware fiber.Handler) IAuthController {
	return &authController{
		authService:    authService,
		authMiddleware: authMiddleware,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)

	protected := h.Group("")
	protected.Use(c.authMiddleware)
	protected.Get("profile", c.Profile)
	protected.Put("profile", c.UpdateProfile)
	protected.Put("password", c.ChangePassword)
	protected.Put("autosave", c.SetAutosave)
	protected.Delete("delete", c.DeleteAccount)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Profile(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	res, err := c.authService.Profile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success profile", res))
}

func (c *authController) UpdateProfile(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	var req dto.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.authService.ChangePassword(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success change password", nil))
}

func (c *authController) SetAutosave(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	var req dto.SetAutosaveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.SetAutosave(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update autosave", res))
}

func (c *authController) DeleteAccount(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	if err := c.authService.DeleteAccount(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete account", nil))
}
