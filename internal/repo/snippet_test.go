package repo

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"exusiai.dev/snippets/internal/model"
	"exusiai.dev/snippets/internal/pkg/kvstore"
)

func TestSnippetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	r := NewSnippet(store)

	_, err := r.GetSnippet(ctx, "missing")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	in := &model.Snippet{
		ID:       "k1",
		Platform: model.PlatformShell,
		Owner:    "snippets",
		Name:     "hello",
		Script:   "echo hello",
		Inputs:   []model.SnippetInput{{Name: "who"}},
	}
	require.NoError(t, r.SaveSnippet(ctx, in))

	out, err := r.GetSnippet(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	raw, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"k1","platform":"shell","owner":"snippets","name":"hello","script":"echo hello","inputs":[{"name":"who","description":""}],"description":""}`, string(raw))
}

func TestGetSnippetsSkipsGarbage(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).With().Str("request_id", "req-1").Logger()
	ctx := l.WithContext(context.Background())
	store := kvstore.NewMemory()
	r := NewSnippet(store)

	require.NoError(t, store.Set(ctx, "a", []byte(`not json`)))
	require.NoError(t, r.SaveSnippet(ctx, &model.Snippet{ID: "b", Platform: model.PlatformNode, Name: "b", Script: "1"}))

	list, err := r.GetSnippets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].Name)

	// the skip is logged through the request logger
	line := gjson.Parse(buf.String())
	assert.Equal(t, "repo.snippet.decode_failed", line.Get("evt\\.name").String())
	assert.Equal(t, "req-1", line.Get("request_id").String())
}
