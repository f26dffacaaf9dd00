package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/snippets/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("STORE_ID", "abc123")

	conf, err := Parse(appcontext.Declare(appcontext.EnvServer))
	require.NoError(t, err)

	assert.Equal(t, "abc123", conf.StoreID)
	assert.Equal(t, "homebots", conf.StoreBackend)
	assert.Equal(t, "s", conf.StoreResource)
	assert.Equal(t, "hashed", conf.IdentityScheme)
	assert.Equal(t, 10*time.Second, conf.StoreTimeout)
	assert.False(t, conf.SearchExposesScripts)
	assert.Equal(t, appcontext.EnvServer, conf.AppContext.Env)
}

func TestParsePrefixed(t *testing.T) {
	t.Setenv("STORE_ID", "plain")
	t.Setenv("SNIPPETS_STORE_ID", "prefixed")
	t.Setenv("SNIPPETS_STORE_BACKEND", "memory")
	t.Setenv("SNIPPETS_IDENTITY_SCHEME", "composite")
	t.Setenv("SNIPPETS_S3_BUCKET", "bucket")

	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, "prefixed", conf.StoreID)
	assert.Equal(t, "memory", conf.StoreBackend)
	assert.Equal(t, "composite", conf.IdentityScheme)
	assert.Equal(t, "bucket", conf.S3Bucket)
}
