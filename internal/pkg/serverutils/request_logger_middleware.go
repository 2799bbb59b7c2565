package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/swaraj-shubh/notebook/internal/pkg/logger"
)

// RequestLoggerMiddleware tags every request with an id and logs the outcome.
func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestId := uuid.NewString()
		c.Locals("request_id", requestId)
		c.Set("X-Request-Id", requestId)

		start := time.Now()
		err := c.Next()

		log.Info("http", "request completed", map[string]interface{}{
			"request_id":  requestId,
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return err
	}
}
