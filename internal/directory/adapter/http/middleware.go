package http

import (
	"context"
	"time"

	"restaurant-directory/internal/shared/contextkeys"
	"restaurant-directory/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the response header echoing the correlation id.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns each request a correlation id, honoring one supplied by
// the client, and threads it through the user context so repository logs can
// carry it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		ctx := context.WithValue(c.UserContext(), contextkeys.RequestIDKey, id)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(log logger.Logger) fiber.Handler {
	log = log.WithComponent("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		log.WithContext(c.UserContext()).WithFields(map[string]interface{}{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request handled")
		return err
	}
}
