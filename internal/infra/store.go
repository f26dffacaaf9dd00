package infra

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/snippets/internal/app/appconfig"
	"exusiai.dev/snippets/internal/core/identity"
	"exusiai.dev/snippets/internal/pkg/bininfo"
	"exusiai.dev/snippets/internal/pkg/kvstore"
)

func IdentityResolver(conf *appconfig.Config) (identity.Resolver, error) {
	return identity.NewResolver(conf.IdentityScheme)
}

// Store opens the resource store selected by conf.StoreBackend.
func Store(lc fx.Lifecycle, conf *appconfig.Config) (kvstore.Resource, error) {
	if conf.StoreBackend != kvstore.BackendMemory && conf.StoreID == "" {
		return nil, errors.New("infra: store: STORE_ID is required")
	}

	var (
		store kvstore.Resource
		err   error
	)
	switch conf.StoreBackend {
	case kvstore.BackendHomebots:
		store, err = kvstore.NewHomebots(kvstore.HomebotsConfig{
			BaseURL:   conf.StoreBaseURL,
			StoreID:   conf.StoreID,
			Resource:  conf.StoreResource,
			Timeout:   conf.StoreTimeout,
			UserAgent: fmt.Sprintf("snippets/%s", bininfo.Version),
		})
	case kvstore.BackendRedis:
		client, cerr := Redis(conf)
		if cerr != nil {
			return nil, cerr
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		store, err = kvstore.NewRedis(client, conf.StoreID, conf.StoreResource)
	case kvstore.BackendS3:
		client, cerr := S3(conf)
		if cerr != nil {
			return nil, cerr
		}
		store, err = kvstore.NewS3(client, conf.S3Bucket, conf.StoreID, conf.StoreResource)
	case kvstore.BackendMemory:
		log.Warn().
			Str("evt.name", "infra.store.memory").
			Msg("snippets are kept in process memory and will be lost on exit")
		store = kvstore.NewMemory()
	default:
		return nil, fmt.Errorf("infra: store: unknown backend %q", conf.StoreBackend)
	}
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("evt.name", "infra.store.ready").
		Str("backend", store.Backend()).
		Str("resource", conf.StoreResource).
		Msg("resource store configured")

	return store, nil
}
