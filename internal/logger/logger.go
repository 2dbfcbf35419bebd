package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger: JSON to stdout in production, a
// console writer with debug level everywhere else.
func New(env string) zerolog.Logger {
	if env == "production" {
		return zerolog.New(os.Stdout).
			Level(zerolog.InfoLevel).
			With().Timestamp().Logger()
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}
