package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/snippets/internal/constant"
	"exusiai.dev/snippets/internal/pkg/flog"
)

// RequestID mirrors the request id assigned by Logger into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
