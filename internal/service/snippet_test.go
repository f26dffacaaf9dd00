package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"exusiai.dev/snippets/internal/app/appconfig"
	"exusiai.dev/snippets/internal/core/identity"
	"exusiai.dev/snippets/internal/model"
	"exusiai.dev/snippets/internal/pkg/apierr"
	"exusiai.dev/snippets/internal/pkg/kvstore"
	"exusiai.dev/snippets/internal/repo"
)

// failingStore rejects every write and read.
type failingStore struct {
	*kvstore.Memory
}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, &kvstore.StatusError{Op: "get", Code: 503}
}

func (failingStore) Set(context.Context, string, []byte) error {
	return &kvstore.StatusError{Op: "set", Code: 503}
}

func newTestSnippet(t *testing.T, resolver identity.Resolver, store kvstore.Resource, expose bool) *Snippet {
	t.Helper()
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{SearchExposesScripts: expose}}
	return NewSnippet(resolver, repo.NewSnippet(store), conf)
}

func TestWriteThenRender(t *testing.T) {
	ctx := context.Background()
	s := newTestSnippet(t, identity.Hashed{}, kvstore.NewMemory(), false)

	id := identity.New("node", "", "build")
	req := &model.WriteSnippetRequest{
		Script:      "console.log(1)",
		Inputs:      []model.SnippetInput{{Name: "target", Description: "Build target"}},
		Description: "builds things",
	}
	require.NoError(t, s.Write(ctx, id, req))

	artifact, err := s.Render(ctx, id)
	require.NoError(t, err)
	j := gjson.ParseBytes(artifact.Body)
	assert.Equal(t, req.Script, j.Get("script").String())
	assert.Equal(t, "target", j.Get("inputs.0.name").String())
	assert.Equal(t, "Build target", j.Get("inputs.0.description").String())
	assert.Equal(t, "builds things", j.Get("description").String())

	stored, err := s.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "snippets", stored.Owner)
	assert.Equal(t, identity.Hashed{}.Resolve(id), stored.ID)
}

func TestWriteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	s := newTestSnippet(t, identity.Hashed{}, store, false)

	id := identity.New("shell", "alice", "hello")
	req := &model.WriteSnippetRequest{Script: "echo hello"}

	require.NoError(t, s.Write(ctx, id, req))
	first, err := store.List(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, id, req))
	second, err := store.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
}

func TestWriteOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestSnippet(t, identity.Hashed{}, kvstore.NewMemory(), false)
	id := identity.New("shell", "alice", "hello")

	require.NoError(t, s.Write(ctx, id, &model.WriteSnippetRequest{Script: "echo one"}))
	require.NoError(t, s.Write(ctx, id, &model.WriteSnippetRequest{Script: "echo two"}))

	stored, err := s.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "echo two", stored.Script)
	assert.NotNil(t, stored.Inputs)
	assert.Empty(t, stored.Inputs)
}

func TestWriteRejectsEmptyScript(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	s := newTestSnippet(t, identity.Hashed{}, store, false)

	// script is checked before inputs
	err := s.Write(ctx, identity.New("shell", "", "x"), &model.WriteSnippetRequest{
		Inputs: []model.SnippetInput{{Description: "no name"}},
	})
	assert.ErrorIs(t, err, apierr.ErrEmptyScript)

	list, _ := store.List(ctx)
	assert.Empty(t, list, "nothing is persisted")
}

func TestWriteRejectsMalformedInputs(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	s := newTestSnippet(t, identity.Hashed{}, store, false)

	err := s.Write(ctx, identity.New("shell", "", "x"), &model.WriteSnippetRequest{
		Script: "echo",
		Inputs: []model.SnippetInput{{Name: "a"}, {Name: "a"}},
	})
	assert.ErrorIs(t, err, apierr.ErrInvalidReq)

	list, _ := store.List(ctx)
	assert.Empty(t, list)
}

func TestWriteStorageFailure(t *testing.T) {
	s := newTestSnippet(t, identity.Hashed{}, failingStore{kvstore.NewMemory()}, false)

	err := s.Write(context.Background(), identity.New("shell", "", "x"), &model.WriteSnippetRequest{Script: "echo"})
	assert.ErrorIs(t, err, apierr.ErrStorage)

	// store details stay in the logs
	var e *apierr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apierr.ErrStorage.Message, e.Message)
	assert.NotContains(t, e.Message, "503")
}

func TestWriteRejectsAmbiguousIdentity(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	s := newTestSnippet(t, identity.Hashed{}, store, false)

	victim := identity.New("shell", "x:y", "n")
	require.NoError(t, s.Write(ctx, victim, &model.WriteSnippetRequest{Script: "echo victim"}))

	err := s.Write(ctx, identity.New("shell:x", "y", "n"), &model.WriteSnippetRequest{Script: "echo attacker"})
	assert.ErrorIs(t, err, apierr.ErrUnsupportedPlatform)

	err = s.Write(ctx, identity.New("shell", "x/y", "n"), &model.WriteSnippetRequest{Script: "echo"})
	assert.ErrorIs(t, err, apierr.ErrInvalidReq)

	err = s.Write(ctx, identity.New("cobol", "", "payroll"), &model.WriteSnippetRequest{Script: "DISPLAY"})
	assert.ErrorIs(t, err, apierr.ErrUnsupportedPlatform)

	stored, err := s.Read(ctx, victim)
	require.NoError(t, err)
	assert.Equal(t, "echo victim", stored.Script)

	list, _ := store.List(ctx)
	assert.Len(t, list, 1)
}

func TestReadFailuresAreNotFound(t *testing.T) {
	ctx := context.Background()

	s := newTestSnippet(t, identity.Hashed{}, kvstore.NewMemory(), false)
	_, err := s.Read(ctx, identity.New("shell", "", "missing"))
	assert.ErrorIs(t, err, apierr.ErrNotFound)

	s = newTestSnippet(t, identity.Hashed{}, failingStore{kvstore.NewMemory()}, false)
	_, err = s.Read(ctx, identity.New("shell", "", "missing"))
	assert.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestPlatformMismatch(t *testing.T) {
	ctx := context.Background()

	for _, resolver := range []identity.Resolver{identity.Hashed{}, identity.Composite{}} {
		t.Run(resolver.Scheme(), func(t *testing.T) {
			store := kvstore.NewMemory()
			s := newTestSnippet(t, resolver, store, false)
			require.NoError(t, s.Write(ctx, identity.New("shell", "alice", "hello"), &model.WriteSnippetRequest{Script: "echo"}))

			if resolver.Scheme() == identity.SchemeHashed {
				// the hashed key of another platform points nowhere; plant the
				// record there to exercise the stored-platform check
				raw, err := store.Get(ctx, resolver.Resolve(identity.New("shell", "alice", "hello")))
				require.NoError(t, err)
				require.NoError(t, store.Set(ctx, resolver.Resolve(identity.New("node", "alice", "hello")), raw))
			}

			_, err := s.Render(ctx, identity.New("node", "alice", "hello"))
			assert.ErrorIs(t, err, apierr.ErrPlatformMismatch)
			assert.NotErrorIs(t, err, apierr.ErrNotFound)
		})
	}
}

func TestRenderUnsupportedPlatform(t *testing.T) {
	s := newTestSnippet(t, identity.Hashed{}, kvstore.NewMemory(), false)
	_, err := s.Render(context.Background(), identity.New("cobol", "", "payroll"))
	assert.ErrorIs(t, err, apierr.ErrUnsupportedPlatform)
}

func TestKey(t *testing.T) {
	id := identity.New("shell", "", "hello")

	s := newTestSnippet(t, identity.Hashed{}, kvstore.NewMemory(), false)
	key, err := s.Key(id)
	require.NoError(t, err)
	assert.Equal(t, "b0746276c80b221313a4f5fbba45a7e8d58f086f79314e2e2daf8bbc4c7401d2", key)

	s = newTestSnippet(t, identity.Composite{}, kvstore.NewMemory(), false)
	_, err = s.Key(id)
	assert.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestIndexAndSearch(t *testing.T) {
	ctx := context.Background()
	s := newTestSnippet(t, identity.Hashed{}, kvstore.NewMemory(), false)

	require.NoError(t, s.Write(ctx, identity.New("shell", "alice", "a"), &model.WriteSnippetRequest{Script: "echo a"}))
	require.NoError(t, s.Write(ctx, identity.New("node", "bob", "b"), &model.WriteSnippetRequest{Script: "b()"}))

	index, err := s.GetIndex(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.SnippetProjection{
		{Platform: model.PlatformShell, Owner: "alice", Name: "a"},
		{Platform: model.PlatformNode, Owner: "bob", Name: "b"},
	}, index)

	found, err := s.Search(ctx, SearchFilter{Owner: "alice"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a", found[0].Name)
	assert.Empty(t, found[0].Script, "scripts are redacted by default")

	exposing := newTestSnippet(t, identity.Hashed{}, kvstore.NewMemory(), true)
	require.NoError(t, exposing.Write(ctx, identity.New("node", "bob", "b"), &model.WriteSnippetRequest{Script: "b()"}))
	found, err = exposing.Search(ctx, SearchFilter{Platform: model.PlatformNode})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "b()", found[0].Script)
}
