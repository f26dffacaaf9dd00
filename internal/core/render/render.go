// Package render turns stored snippets into the artifact each platform executes.
package render

import (
	"sort"

	"exusiai.dev/snippets/internal/model"
	"exusiai.dev/snippets/internal/pkg/apierr"
)

// Artifact is a rendered snippet ready to be written to the wire.
type Artifact struct {
	ContentType string
	Body        []byte
}

type Renderer interface {
	Render(snippet *model.Snippet) (*Artifact, error)
}

var renderers = map[model.Platform]Renderer{
	model.PlatformShell: Shell{},
	model.PlatformNode:  Node{},
}

// Supported reports whether platform has a renderer.
func Supported(platform model.Platform) bool {
	_, ok := renderers[platform]
	return ok
}

// Platforms lists the platforms that can be rendered, sorted.
func Platforms() []string {
	out := make([]string, 0, len(renderers))
	for p := range renderers {
		out = append(out, p.String())
	}
	sort.Strings(out)
	return out
}

// Render renders snippet for platform. Platforms without a renderer fail with
// apierr.ErrUnsupportedPlatform.
func Render(platform model.Platform, snippet *model.Snippet) (*Artifact, error) {
	r, ok := renderers[platform]
	if !ok {
		return nil, apierr.ErrUnsupportedPlatform.Msg("invalid snippet format: %s", platform)
	}
	return r.Render(snippet)
}
