package utils

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger: console output with timestamps at the
// given level. An unknown level falls back to info with a warning.
func NewLogger(level, service string) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Str("service", service).Logger()

	lvl := zerolog.InfoLevel
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			lvl = parsed
		} else {
			logger.Warn().Str("invalid_level", level).Msg("Invalid log level, using default 'info'")
		}
	}
	return logger.Level(lvl)
}
