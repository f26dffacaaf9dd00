package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/snippets/cmd/app/server"
	"exusiai.dev/snippets/cmd/app/uid"
	"exusiai.dev/snippets/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "snippets",
		Usage:       "store and serve shareable scripts",
		Description: "Stores named script snippets in a remote resource store and renders them per platform over HTTP. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			uid.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
