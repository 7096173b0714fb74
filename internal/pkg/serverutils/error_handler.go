package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/logger"
)

// ErrorHandlerMiddleware translates errors bubbling out of controllers
// into the response envelope. Unexpected failures are logged with their
// cause and surfaced as a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			switch appErr.Kind {
			case apperr.KindValidation:
				return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ValidationErrorResponse(appErr.Fields))
			case apperr.KindBadRequest:
				return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(appErr.Message))
			case apperr.KindUnauthenticated:
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(appErr.Message))
			case apperr.KindNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(appErr.Message))
			case apperr.KindConflict:
				return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(appErr.Message))
			default:
				log.Error("http", "unexpected error", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
				return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Server error"))
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Server error"))
	}
}
