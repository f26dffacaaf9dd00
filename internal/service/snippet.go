package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"exusiai.dev/snippets/internal/app/appconfig"
	"exusiai.dev/snippets/internal/core/identity"
	"exusiai.dev/snippets/internal/core/render"
	"exusiai.dev/snippets/internal/model"
	"exusiai.dev/snippets/internal/pkg/apierr"
	"exusiai.dev/snippets/internal/pkg/observability"
	"exusiai.dev/snippets/internal/pkg/rekuest"
	"exusiai.dev/snippets/internal/repo"
)

type Snippet struct {
	Resolver    identity.Resolver
	SnippetRepo *repo.Snippet

	exposeScripts bool
}

func NewSnippet(resolver identity.Resolver, snippetRepo *repo.Snippet, conf *appconfig.Config) *Snippet {
	return &Snippet{
		Resolver:      resolver,
		SnippetRepo:   snippetRepo,
		exposeScripts: conf.SearchExposesScripts,
	}
}

// Write validates req and stores it as the snippet designated by id,
// replacing any snippet already stored there. Only renderable platforms
// can be written.
func (s *Snippet) Write(ctx context.Context, id identity.Identity, req *model.WriteSnippetRequest) error {
	if !render.Supported(id.Platform) {
		return apierr.ErrUnsupportedPlatform.Msg("invalid snippet format: %s", id.Platform)
	}
	if err := id.Validate(); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	if req.Script == "" {
		return apierr.ErrEmptyScript
	}
	if err := rekuest.ValidStruct(req); err != nil {
		return err
	}

	snippet := &model.Snippet{
		ID:       s.Resolver.Resolve(id),
		Platform: id.Platform,
		Owner:    id.Owner,
		Name:     id.Name,
		Script:   req.Script,
		Inputs: lo.Map(req.Inputs, func(i model.SnippetInput, _ int) model.SnippetInput {
			return model.SnippetInput{Name: i.Name, Description: i.Description}
		}),
		Description: req.Description,
	}

	if err := s.SnippetRepo.SaveSnippet(ctx, snippet); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("evt.name", "snippet.write.failed").
			Str("snippet", id.String()).
			Msg("failed to persist snippet")
		return apierr.ErrStorage
	}

	observability.SnippetWritten.WithLabelValues(id.Platform.String()).Inc()
	log.Ctx(ctx).Info().
		Str("evt.name", "snippet.write").
		Str("snippet", id.String()).
		Str("key", snippet.ID).
		Msg("snippet written")

	return nil
}

// Read fetches the snippet designated by id. Absence and store failures are
// both reported as apierr.ErrNotFound; a snippet stored under another
// platform is reported as apierr.ErrPlatformMismatch.
func (s *Snippet) Read(ctx context.Context, id identity.Identity) (*model.Snippet, error) {
	if err := id.Validate(); err != nil {
		return nil, apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	key := s.Resolver.Resolve(id)

	snippet, err := s.SnippetRepo.GetSnippet(ctx, key)
	if err != nil {
		log.Ctx(ctx).Debug().
			Err(err).
			Str("evt.name", "snippet.read.failed").
			Str("snippet", id.String()).
			Str("key", key).
			Msg("snippet could not be fetched")
		return nil, apierr.ErrNotFound
	}

	if snippet.Platform != id.Platform {
		return nil, apierr.ErrPlatformMismatch.Msg("snippet %s/%s is stored for platform %s, not %s", id.Owner, id.Name, snippet.Platform, id.Platform)
	}

	return snippet, nil
}

// Render reads the snippet designated by id and renders it for its platform.
// Platforms without a renderer are rejected before the store is consulted.
func (s *Snippet) Render(ctx context.Context, id identity.Identity) (*render.Artifact, error) {
	if !render.Supported(id.Platform) {
		return nil, apierr.ErrUnsupportedPlatform.Msg("invalid snippet format: %s", id.Platform)
	}

	snippet, err := s.Read(ctx, id)
	if err != nil {
		return nil, err
	}

	artifact, err := render.Render(id.Platform, snippet)
	if err != nil {
		return nil, err
	}

	observability.SnippetRendered.WithLabelValues(id.Platform.String()).Inc()
	return artifact, nil
}

// Key returns the storage key of id. It is only available when the active
// identity scheme allows keys to be published.
func (s *Snippet) Key(id identity.Identity) (string, error) {
	if !s.Resolver.Exposed() {
		return "", apierr.ErrNotFound.Msg("storage keys are not published under the %s identity scheme", s.Resolver.Scheme())
	}
	if err := id.Validate(); err != nil {
		return "", apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	return s.Resolver.Resolve(id), nil
}

// GetIndex lists the public projection of every stored snippet.
func (s *Snippet) GetIndex(ctx context.Context) ([]model.SnippetProjection, error) {
	snippets := s.list(ctx)
	return lo.Map(snippets, func(item *model.Snippet, _ int) model.SnippetProjection {
		return item.Projection()
	}), nil
}

type SearchFilter struct {
	Platform model.Platform
	Owner    string
}

// Search lists stored snippets matching filter. Script bodies are redacted
// unless the service is configured to expose them.
func (s *Snippet) Search(ctx context.Context, filter SearchFilter) ([]*model.Snippet, error) {
	snippets := lo.Filter(s.list(ctx), func(item *model.Snippet, _ int) bool {
		if filter.Platform != "" && item.Platform != filter.Platform {
			return false
		}
		if filter.Owner != "" && item.Owner != filter.Owner {
			return false
		}
		return true
	})

	if s.exposeScripts {
		return snippets, nil
	}
	return lo.Map(snippets, func(item *model.Snippet, _ int) *model.Snippet {
		return item.Redacted()
	}), nil
}

// list never fails: store listing errors are logged and reported as an
// empty result.
func (s *Snippet) list(ctx context.Context) []*model.Snippet {
	snippets, err := s.SnippetRepo.GetSnippets(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().
			Err(err).
			Str("evt.name", "snippet.list.failed").
			Msg("failed to list snippets; reporting an empty list")
		return []*model.Snippet{}
	}
	return snippets
}
