package meta

import (
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/snippets/internal/server/svr"
)

func RegisterIndex(meta *svr.Meta) {
	meta.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "snippets: shareable scripts, rendered per platform",
			"routes":  []string{"/s/:platform/:owner/:name", "/snippets/:platform/:owner/:name", "/index", "/search", "/uid/:platform/:owner/:name"},
		})
	})
}
