package cachectrl

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/zeebo/xxh3"
)

// ETag computes a strong entity tag for body.
func ETag(body []byte) string {
	return `"` + strconv.FormatUint(xxh3.Hash(body), 16) + `"`
}

// Revalidate sets the ETag of body on the response and reports whether the
// client already holds that representation. Responses are always revalidated
// since snippets may be overwritten at any moment.
func Revalidate(ctx *fiber.Ctx, body []byte) (fresh bool) {
	tag := ETag(body)
	ctx.Set(fiber.HeaderETag, tag)
	ctx.Set(fiber.HeaderCacheControl, "no-cache")

	match := ctx.Get(fiber.HeaderIfNoneMatch)
	return match != "" && (match == "*" || matches(match, tag))
}

func matches(header, tag string) bool {
	return lo.ContainsBy(strings.Split(header, ","), func(candidate string) bool {
		candidate = strings.TrimSpace(candidate)
		return candidate == tag || candidate == "W/"+tag
	})
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
