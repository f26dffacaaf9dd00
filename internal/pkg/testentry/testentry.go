// Package testentry holds fx options shared by tests that boot the whole graph.
package testentry

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// Options routes the global logger to the test log, so output is only shown
// for failing tests, and populates targets from the graph.
func Options(t zerolog.TestingLog, targets ...any) []fx.Option {
	return []fx.Option{
		fx.Invoke(func() {
			log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
		}),
		fx.Populate(targets...),
	}
}
