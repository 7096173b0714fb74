package controller

import (
	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/serverutils"
	"github.com/DeDsEC-7/NoteNest-Api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHomeController interface {
	RegisterRoutes(r fiber.Router)
}

type homeController struct {
	homeService    service.IHomeService
	authMiddleware fiber.Handler
}

func NewHomeController(homeService service.IHomeService, authMiddleware fiber.Handler) IHomeController {
	return &homeController{
		homeService:    homeService,
		authMiddleware: authMiddleware,
	}
}

func (c *homeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/home/v1")
	h.Use(c.authMiddleware)
	h.Get("dashboard", c.Dashboard)
	h.Get("search", c.Search)
	h.Get("pinned", c.Pinned)
}

func (c *homeController) Dashboard(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	req := dto.DashboardRequest{
		Page:    clampPositive(ctx.QueryInt("page", dto.DefaultPage), dto.DefaultPage),
		Limit:   clampPositive(ctx.QueryInt("limit", dto.DefaultLimit), dto.DefaultLimit),
		Type:    ctx.Query("type", "all"),
		Keyword: ctx.Query("keyword"),
	}

	res, err := c.homeService.Dashboard(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success dashboard", res))
}

func (c *homeController) Search(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	req := dto.SearchRequest{
		Keyword:  ctx.Query("keyword"),
		Type:     ctx.Query("type", "all"),
		Category: ctx.Query("category", "all"),
		Page:     clampPositive(ctx.QueryInt("page", dto.DefaultPage), dto.DefaultPage),
		Limit:    clampPositive(ctx.QueryInt("limit", dto.DefaultSearchLimit), dto.DefaultSearchLimit),
	}

	res, err := c.homeService.Search(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search", res))
}

func (c *homeController) Pinned(ctx *fiber.Ctx) error {
	userId := serverutils.CallerID(ctx)

	res, err := c.homeService.Pinned(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success pinned", res))
}

// clampPositive folds non-positive or unparseable values back to the
// default rather than rejecting the request.
func clampPositive(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
