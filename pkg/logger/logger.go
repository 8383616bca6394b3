// Package logger builds the zerolog logger handed down by injection.
// main constructs exactly one and passes it to the router, services and
// workers; there is no package-level instance.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Empty or unrecognised values mean info.
	Level string
	// Pretty enables human-readable console output for development.
	// Leave false in production to emit JSON.
	Pretty bool
	// Output is the writer logs are sent to. Defaults to os.Stdout.
	Output io.Writer
}

// New builds a logger with timestamps and caller annotations.
func New(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
