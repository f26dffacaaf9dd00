package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/snippets/internal/constant"
	"exusiai.dev/snippets/internal/model"
	"exusiai.dev/snippets/internal/pkg/cachectrl"
	"exusiai.dev/snippets/internal/pkg/rekuest"
	"exusiai.dev/snippets/internal/server/svr"
	"exusiai.dev/snippets/internal/service"
)

type Snippet struct {
	fx.In

	SnippetService *service.Snippet
}

func RegisterSnippet(root *svr.Root, c Snippet) {
	root.Get("/s/:platform/:owner/:name", c.Render)
	root.Get("/s/:platform/:name", c.Render)
	root.Put("/s/:platform/:owner/:name", c.Write)

	root.Get("/snippets/:platform/:owner/:name", c.GetRaw)
	root.Get("/snippets/:platform/:name", c.GetRaw)
}

func (c *Snippet) Render(ctx *fiber.Ctx) error {
	artifact, err := c.SnippetService.Render(ctx.UserContext(), identityFromParams(ctx))
	if err != nil {
		return err
	}

	if cachectrl.Revalidate(ctx, artifact.Body) {
		return ctx.SendStatus(fiber.StatusNotModified)
	}

	ctx.Set(fiber.HeaderContentType, artifact.ContentType)
	return ctx.Send(artifact.Body)
}

func (c *Snippet) Write(ctx *fiber.Ctx) error {
	var req model.WriteSnippetRequest
	// an absent body is an empty snippet, rejected by the service
	if len(ctx.Body()) > 0 {
		if err := rekuest.ParseJSON(ctx, &req); err != nil {
			return err
		}
	}

	if err := c.SnippetService.Write(ctx.UserContext(), identityFromParams(ctx), &req); err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.SendString(constant.WriteAcknowledgement)
}

func (c *Snippet) GetRaw(ctx *fiber.Ctx) error {
	snippet, err := c.SnippetService.Read(ctx.UserContext(), identityFromParams(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(snippet)
}
