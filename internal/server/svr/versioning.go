package svr

import (
	"github.com/gofiber/fiber/v2"
)

// Root serves the snippet routes, mounted at the root of the server.
type Root struct {
	fiber.Router
}

// Meta serves service introspection routes.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Root, *Meta) {
	meta := app.Group("/api/_")

	return &Root{Router: app}, &Meta{Router: meta}
}
