package identity

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/snippets/internal/constant"
	"exusiai.dev/snippets/internal/model"
)

func TestHashedKnownValue(t *testing.T) {
	key := Hashed{}.Resolve(New("shell", "", "hello"))
	assert.Equal(t, "b0746276c80b221313a4f5fbba45a7e8d58f086f79314e2e2daf8bbc4c7401d2", key)
	assert.Equal(t, Hashed{}.Resolve(Identity{Platform: model.PlatformShell, Owner: "snippets", Name: "hello"}), key)
}

func TestNewDefaultsOwner(t *testing.T) {
	id := New("node", "", "build")
	assert.Equal(t, constant.DefaultOwner, id.Owner)
	assert.Equal(t, "node:snippets/build", id.String())

	id = New("node", "alice", "build")
	assert.Equal(t, "alice", id.Owner)
}

func TestComposite(t *testing.T) {
	r := Composite{}
	assert.Equal(t, "alice/build", r.Resolve(New("shell", "alice", "build")))
	assert.Equal(t, r.Resolve(New("shell", "alice", "build")), r.Resolve(New("node", "alice", "build")),
		"composite keys collide across platforms")
	assert.False(t, r.Exposed())
}

func TestNewResolver(t *testing.T) {
	r, err := NewResolver("")
	require.NoError(t, err)
	assert.Equal(t, SchemeHashed, r.Scheme())

	r, err = NewResolver("Composite")
	require.NoError(t, err)
	assert.Equal(t, SchemeComposite, r.Scheme())

	_, err = NewResolver("md5")
	assert.Error(t, err)
}

func TestResolve_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("hashed resolution is deterministic", prop.ForAll(
		func(platform, owner, name string) bool {
			id := New(platform, owner, name)
			return Hashed{}.Resolve(id) == Hashed{}.Resolve(id)
		},
		gen.AlphaString(), gen.AlphaString(), gen.AlphaString(),
	))

	properties.Property("hashed keys change with the platform", prop.ForAll(
		func(owner, name string) bool {
			return Hashed{}.Resolve(New("shell", owner, name)) != Hashed{}.Resolve(New("node", owner, name))
		},
		gen.AlphaString(), gen.AlphaString(),
	))

	properties.Property("hashed keys change with the owner", prop.ForAll(
		func(owner, name string) bool {
			return Hashed{}.Resolve(New("shell", owner+"a", name)) != Hashed{}.Resolve(New("shell", owner+"b", name))
		},
		gen.AlphaString(), gen.AlphaString(),
	))

	properties.Property("hashed keys change with the name", prop.ForAll(
		func(owner, name string) bool {
			return Hashed{}.Resolve(New("shell", owner, name+"a")) != Hashed{}.Resolve(New("shell", owner, name+"b"))
		},
		gen.AlphaString(), gen.AlphaString(),
	))

	properties.Property("composite resolution ignores the platform", prop.ForAll(
		func(owner, name string) bool {
			return Composite{}.Resolve(New("shell", owner, name)) == Composite{}.Resolve(New("node", owner, name))
		},
		gen.AlphaString(), gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestValidate(t *testing.T) {
	require.NoError(t, New("shell", "alice", "hello").Validate())
	require.NoError(t, New("shell", "x:y", "n").Validate())

	assert.Error(t, New("shell:x", "y", "n").Validate())
	assert.Error(t, New("shell/x", "y", "n").Validate())
	assert.Error(t, New("shell", "a/b", "c").Validate())
	assert.Error(t, New("", "alice", "hello").Validate())
	assert.Error(t, New("shell", "alice", "").Validate())

	// the colliding pair only exists when validation is skipped
	assert.Equal(t,
		Hashed{}.Resolve(Identity{Platform: "shell:x", Owner: "y", Name: "n"}),
		Hashed{}.Resolve(Identity{Platform: "shell", Owner: "x:y", Name: "n"}),
	)
}
