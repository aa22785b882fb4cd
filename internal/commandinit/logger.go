package commandinit

import (
	"io"

	"github.com/artuross/exprcalc/internal/log/semconv"
	"github.com/rs/zerolog"
)

// NewLogger creates the console logger of a command. Logs go to w so that the
// command output stays machine readable.
func NewLogger(w io.Writer, cfg *Config, command string) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
	})).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Str(semconv.Command, command).
		Logger()
}
