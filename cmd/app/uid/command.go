package uid

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"exusiai.dev/snippets/internal/app"
	"exusiai.dev/snippets/internal/app/appcontext"
	"exusiai.dev/snippets/internal/core/identity"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "uid",
		Usage:     "print the storage key of a snippet",
		ArgsUsage: "<platform> [owner] <name>",
		Action: func(c *cli.Context) error {
			id, err := parseArgs(c.Args().Slice())
			if err != nil {
				return err
			}

			var resolver identity.Resolver
			fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), fx.Populate(&resolver))
			if err := fxApp.Err(); err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, resolver.Resolve(id))
			return nil
		},
	}
}

func parseArgs(args []string) (identity.Identity, error) {
	switch len(args) {
	case 2:
		return identity.New(args[0], "", args[1]), nil
	case 3:
		return identity.New(args[0], args[1], args[2]), nil
	default:
		return identity.Identity{}, cli.Exit("usage: snippets uid <platform> [owner] <name>", 1)
	}
}
