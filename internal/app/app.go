package app

import (
	"time"

	"go.uber.org/fx"

	"exusiai.dev/snippets/internal/app/appconfig"
	"exusiai.dev/snippets/internal/app/appcontext"
	"exusiai.dev/snippets/internal/controller"
	"exusiai.dev/snippets/internal/infra"
	"exusiai.dev/snippets/internal/pkg/logger"
	"exusiai.dev/snippets/internal/repo"
	"exusiai.dev/snippets/internal/server"
	"exusiai.dev/snippets/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// fiber's Shutdown() honors IdleTimeout; this only guards against a stuck shutdown.
		fx.StopTimeout(5 * time.Minute),
	}

	// the CLI has no use for an HTTP server
	if ctx.Env == appcontext.EnvServer {
		baseOpts = append(baseOpts,
			// Servers
			server.Module(),

			// Controllers
			controller.Module(),
		)
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
