package config

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger writing to w. Verbosity 0 logs warnings and
// errors, 1 adds progress, 2 and above add debug output.
func NewLogger(w io.Writer, verbosity int) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
