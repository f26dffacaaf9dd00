package repo

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/snippets/internal/model"
	"exusiai.dev/snippets/internal/pkg/kvstore"
	"exusiai.dev/snippets/internal/pkg/observability"
)

type Snippet struct {
	store kvstore.Resource
}

func NewSnippet(store kvstore.Resource) *Snippet {
	return &Snippet{store: store}
}

func (r *Snippet) observe(op string, start time.Time, err error) {
	result := "ok"
	if errors.Is(err, kvstore.ErrNotFound) {
		result = "not_found"
	} else if err != nil {
		result = "error"
	}
	observability.StoreOpDuration.
		WithLabelValues(r.store.Backend(), op, result).
		Observe(time.Since(start).Seconds())
}

// GetSnippet fetches the snippet stored under id. kvstore.ErrNotFound is
// returned unwrapped when the id is absent.
func (r *Snippet) GetSnippet(ctx context.Context, id string) (snippet *model.Snippet, err error) {
	defer func(start time.Time) { r.observe("get", start, err) }(time.Now())

	raw, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	snippet = &model.Snippet{}
	if err = json.Unmarshal(raw, snippet); err != nil {
		return nil, errors.Wrapf(err, "repo: snippet %s is not a valid record", id)
	}
	return snippet, nil
}

// SaveSnippet writes snippet under its ID, replacing whatever was stored there.
func (r *Snippet) SaveSnippet(ctx context.Context, snippet *model.Snippet) (err error) {
	defer func(start time.Time) { r.observe("set", start, err) }(time.Now())

	raw, err := json.Marshal(snippet)
	if err != nil {
		return errors.Wrap(err, "repo: failed to encode snippet")
	}
	return r.store.Set(ctx, snippet.ID, raw)
}

// GetSnippets lists every stored snippet. Items that do not decode as
// snippets are skipped.
func (r *Snippet) GetSnippets(ctx context.Context) (snippets []*model.Snippet, err error) {
	defer func(start time.Time) { r.observe("list", start, err) }(time.Now())

	raws, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	snippets = make([]*model.Snippet, 0, len(raws))
	for _, raw := range raws {
		var s model.Snippet
		if err := json.Unmarshal(raw, &s); err != nil {
			log.Ctx(ctx).Warn().
				Err(err).
				Str("evt.name", "repo.snippet.decode_failed").
				Msg("skipping undecodable item in snippet listing")
			continue
		}
		snippets = append(snippets, &s)
	}
	return snippets, nil
}
