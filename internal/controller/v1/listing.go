package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/snippets/internal/model"
	"exusiai.dev/snippets/internal/pkg/cachectrl"
	"exusiai.dev/snippets/internal/server/svr"
	"exusiai.dev/snippets/internal/service"
)

type Listing struct {
	fx.In

	SnippetService *service.Snippet
}

func RegisterListing(root *svr.Root, c Listing) {
	root.Get("/index", c.GetIndex)
	root.Get("/search", c.Search)
	root.Get("/uid/:platform/:owner/:name", c.GetKey)
	root.Get("/uid/:platform/:name", c.GetKey)
}

func (c *Listing) GetIndex(ctx *fiber.Ctx) error {
	index, err := c.SnippetService.GetIndex(ctx.UserContext())
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(index)
}

func (c *Listing) Search(ctx *fiber.Ctx) error {
	snippets, err := c.SnippetService.Search(ctx.UserContext(), service.SearchFilter{
		Platform: model.Platform(ctx.Query("platform")),
		Owner:    ctx.Query("owner"),
	})
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(snippets)
}

func (c *Listing) GetKey(ctx *fiber.Ctx) error {
	key, err := c.SnippetService.Key(identityFromParams(ctx))
	if err != nil {
		return err
	}

	return ctx.SendString(key)
}
