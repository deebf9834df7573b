// Package elog holds the package-level logger for this module, modeled on
// gnark's own logger package: a zerolog.Logger that defaults to a no-op
// sink so the library is silent unless a caller opts in.
package elog

import (
	"io"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// Logger returns the current package-level logger.
func Logger() zerolog.Logger {
	return logger
}

// SetOutput redirects the package-level logger to w at the given level.
// Passing a nil writer restores the no-op logger.
func SetOutput(w io.Writer, level zerolog.Level) {
	if w == nil {
		logger = zerolog.Nop()
		return
	}
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}
