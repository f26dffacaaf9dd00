package logger

import (
	"bytes"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// fxWriter forwards fx console events to zerolog, one line per event.
type fxWriter struct {
	l zerolog.Logger
}

var _ io.Writer = (*fxWriter)(nil)

func Fx() fxevent.Logger {
	return &fxevent.ConsoleLogger{
		W: fxWriter{
			l: log.Logger.With().Str("evt.name", "fx.init").Logger(),
		},
	}
}

func (w fxWriter) Write(p []byte) (int, error) {
	w.l.Debug().Msg(string(bytes.TrimSuffix(p, []byte{'\n'})))
	return len(p), nil
}
