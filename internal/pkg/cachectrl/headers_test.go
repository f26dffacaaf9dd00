package cachectrl

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestETagStable(t *testing.T) {
	assert.Equal(t, ETag([]byte("echo hi")), ETag([]byte("echo hi")))
	assert.NotEqual(t, ETag([]byte("echo hi")), ETag([]byte("echo ho")))
}

func TestRevalidate(t *testing.T) {
	body := []byte("#!/bin/bash\necho hi")
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		if Revalidate(ctx, body) {
			return ctx.SendStatus(fiber.StatusNotModified)
		}
		return ctx.Send(body)
	})

	cases := []struct {
		ifNoneMatch string
		status      int
	}{
		{"", fiber.StatusOK},
		{`"deadbeef"`, fiber.StatusOK},
		{ETag(body), fiber.StatusNotModified},
		{`"deadbeef", ` + ETag(body), fiber.StatusNotModified},
		{"W/" + ETag(body), fiber.StatusNotModified},
		{"*", fiber.StatusNotModified},
	}
	for _, c := range cases {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		if c.ifNoneMatch != "" {
			req.Header.Set(fiber.HeaderIfNoneMatch, c.ifNoneMatch)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, c.status, resp.StatusCode, "If-None-Match: %q", c.ifNoneMatch)
		assert.Equal(t, ETag(body), resp.Header.Get(fiber.HeaderETag))
	}
}
