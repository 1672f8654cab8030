package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a logger that forwards messages to t.Log, at debug
// level.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     zerolog.NewTestWriter(t),
		NoColor: true,
	}).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Reporter returns a printf-style function that writes to t.Logf.  It matches
// the starlark print reporter signature.
func Reporter(t *testing.T) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		t.Helper()
		t.Logf(format, args...)
	}
}
