package di

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// ProvideLogger creates a new zerolog.Logger configured for the runtime
// environment. When MLDEPLOY_LOG_FORMAT=json (build agents), it uses JSON
// format; in a terminal it uses console format with pretty printing.
func ProvideLogger() zerolog.Logger {
	if os.Getenv("MLDEPLOY_LOG_FORMAT") == "json" {
		return zerolog.New(os.Stdout).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// ProvideContext returns a base context carrying the logger, so injected
// components can log via zerolog.Ctx.
func ProvideContext(logger zerolog.Logger) context.Context {
	return logger.WithContext(context.Background())
}
