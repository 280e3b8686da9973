package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger creates the service logger. Diagnostics go to stderr in console
// format so workbook paths printed on stdout stay machine-readable.
func NewLogger(service string, debug bool) zerolog.Logger {
	return newLogger(service, debug, zerolog.ConsoleWriter{Out: os.Stderr})
}

func newLogger(service string, debug bool, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
