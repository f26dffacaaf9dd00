package appconfig

import (
	"time"

	"exusiai.dev/snippets/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// StoreBackend selects where snippets are kept.
	// Valid values are: homebots, redis, s3, memory (for development and tests).
	StoreBackend string `required:"true" split_words:"true" default:"homebots"`

	// StoreID is the opaque identifier of the store snippets are kept in.
	// The unprefixed STORE_ID variable is honored as well.
	StoreID string `envconfig:"STORE_ID"`

	// StoreResource is the resource kind snippets are stored under inside the store.
	StoreResource string `split_words:"true" default:"s"`

	// StoreBaseURL is the root URL of the homebots store service.
	StoreBaseURL string `split_words:"true" default:"https://store.homebots.io"`

	// StoreTimeout bounds every call made to the store.
	StoreTimeout time.Duration `split_words:"true" default:"10s"`

	// RedisURL is the URL of the Redis server used by the redis store backend. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for more information on how to construct a Redis URL.
	RedisURL string `split_words:"true" default:"redis://127.0.0.1:6379/0"`

	// S3Bucket is the bucket used by the s3 store backend.
	S3Bucket string `envconfig:"S3_BUCKET"`

	// S3Region is the region of S3Bucket.
	S3Region string `envconfig:"S3_REGION" default:"us-east-1"`

	// S3Endpoint overrides the S3 endpoint, e.g. for MinIO. Path-style addressing is used when set.
	S3Endpoint string `envconfig:"S3_ENDPOINT"`

	// S3AccessKey and S3SecretKey are static credentials. When left empty the default AWS
	// credential chain is used.
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`

	// IdentityScheme selects how a (platform, owner, name) triple maps to a storage key.
	// Valid values are: hashed (sha256 of the triple), composite ("{owner}/{name}").
	IdentityScheme string `split_words:"true" default:"hashed"`

	// SearchExposesScripts makes /search return full script bodies instead of redacted records.
	SearchExposesScripts bool `split_words:"true" default:"false"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
