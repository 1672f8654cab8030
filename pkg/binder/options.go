package binder

import "github.com/rs/zerolog"

// Option configures a Binder.
type Option func(b *Binder) *Binder

// WithLogger sets the logger.  The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Binder) *Binder {
		b.logger = logger
		return b
	}
}
