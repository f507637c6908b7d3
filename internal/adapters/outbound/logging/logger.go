package logging

import (
	"io"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type fdWriter interface {
	Fd() uintptr
}

// New returns a console logger writing to w. The base level is debug; the
// fix service narrows it per invocation. Colors are only used on terminals.
func New(w io.Writer) zerolog.Logger {
	noColor := true
	if f, ok := w.(fdWriter); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Str("component", "fixhook").Logger()
}
