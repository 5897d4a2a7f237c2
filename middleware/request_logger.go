package middleware

import (
	"time"

	"tourism-booking/logger"
	"tourism-booking/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger records each request/response pair through the async logger.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:       c.Method(),
			URL:          c.OriginalURL(),
			RequestBody:  string(c.Body()),
			ResponseBody: string(c.Response().Body()),
			StatusCode:   c.Response().StatusCode(),
			ClientIP:     c.IP(),
			LatencyMS:    time.Since(start).Milliseconds(),
			CreatedAt:    time.Now(),
		})

		return err
	}
}
