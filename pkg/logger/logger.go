package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options selects verbosity and output format
type Options struct {
	Level  string // debug, info, warn, error
	Format string // "json" or "pretty"
}

// FromEnv reads LOG_LEVEL and LOG_FORMAT. ENV=development forces pretty output.
func FromEnv() Options {
	opts := Options{Level: os.Getenv("LOG_LEVEL"), Format: os.Getenv("LOG_FORMAT")}
	if os.Getenv("ENV") == "development" {
		opts.Format = "pretty"
	}
	return opts
}

// New creates a new zerolog logger with structured output
func New(opts Options) zerolog.Logger {
	return NewWithWriter(os.Stdout, opts)
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(w io.Writer, opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var logLevel zerolog.Level
	switch opts.Level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	// Use pretty console output in development
	if opts.Format == "pretty" {
		return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
			Level(logLevel).
			With().
			Timestamp().
			Caller().
			Str("service", "techblog-api").
			Logger()
	}

	// JSON output for production
	return zerolog.New(w).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "techblog-api").
		Logger()
}
