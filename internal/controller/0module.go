package controller

import (
	"go.uber.org/fx"

	controllermeta "exusiai.dev/snippets/internal/controller/meta"
	controllerv1 "exusiai.dev/snippets/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (snippets)
		controllerv1.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
