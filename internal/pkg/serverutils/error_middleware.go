package serverutils

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"github.com/swaraj-shubh/notebook/internal/pkg/logger"
)

func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Error("http", "panic recovered", map[string]interface{}{
					"panic": fmt.Sprintf("%v", r),
					"stack": string(debug.Stack()),
				})
				_ = c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(
					fiber.StatusInternalServerError, "Internal Server Error",
				))
			}
		}()

		err := c.Next()
		if err == nil {
			return nil
		}

		// 1. Handle Known Business Logic Errors
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		if errors.Is(err, ErrBadRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return c.Status(fiberErr.Code).JSON(ErrorResponse(
				fiberErr.Code, fiberErr.Message,
			))
		}

		if ve, ok := err.(*ValidationError); ok {
			return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse(ve.ToErrorDetails()))
		}

		// 2. Anything else is a store or programming failure
		log.Error("http", "unhandled error", map[string]interface{}{
			"error": err.Error(),
			"path":  c.Path(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(
			fiber.StatusInternalServerError, err.Error(),
		))
	}
}
