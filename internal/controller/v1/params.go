package v1

import (
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/snippets/internal/core/identity"
)

// identityFromParams reads the snippet identity from the route. Routes
// without an :owner segment address the default owner.
func identityFromParams(ctx *fiber.Ctx) identity.Identity {
	return identity.New(ctx.Params("platform"), ctx.Params("owner"), ctx.Params("name"))
}
