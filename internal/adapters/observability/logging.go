package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the process-wide zerolog Logger: JSON to stdout,
// or a human-friendly console writer when APP_ENV=dev (or development).
func NewLogger(env string) zerolog.Logger {
	if env == "dev" || env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Str("service", "agentix-api").Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Str("service", "agentix-api").Logger()
}
