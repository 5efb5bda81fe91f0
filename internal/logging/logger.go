// Package logging builds the structured logger shared by the commands.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at Info level, or Debug when
// verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Level(level)
}
