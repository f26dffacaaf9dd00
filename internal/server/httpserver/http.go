package httpserver

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"

	"exusiai.dev/snippets/internal/app/appconfig"
	"exusiai.dev/snippets/internal/constant"
	"exusiai.dev/snippets/internal/pkg/bininfo"
	"exusiai.dev/snippets/internal/pkg/middlewares"
	"exusiai.dev/snippets/internal/pkg/observability"
)

var (
	fiberprom        *fiberprometheus.FiberPrometheus
	registerPromOnce sync.Once
)

func Create(conf *appconfig.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Snippets",
		ServerHeader: fmt.Sprintf("Snippets/%s", bininfo.Version),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
		Immutable:               true,
		UnescapePath:            true,
	})

	app.Use(favicon.New())
	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, PUT, OPTIONS",
		AllowHeaders:  "Content-Type, If-None-Match, sentry-trace",
		ExposeHeaders: "Content-Type, ETag, " + constant.RequestIDHeader,
	}))
	middlewares.Logger(app)
	// the logger middleware injects the request id into the user context;
	// repopulate it into ctx.Locals for the handlers below
	app.Use(middlewares.RequestID())
	app.Use(middlewares.EnrichSentry())

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:     31356000,
		ReferrerPolicy: "strict-origin-when-cross-origin",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Str("evt.name", "http.panic").Msgf("panic: %v\n%s\n", e, buf)
		},
	}))

	// collectors can only be registered once per process; tests build many apps
	registerPromOnce.Do(func() {
		fiberprom = fiberprometheus.New(observability.ServiceName)
	})
	fiberprom.RegisterAt(app, "/metrics")
	app.Use(fiberprom.Middleware)

	if conf.DevMode {
		log.Info().Str("evt.name", "http.devmode").Msg("Running in DEV mode")
		app.Use(pprof.New())
	}

	return app
}
