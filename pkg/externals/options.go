package externals

import "github.com/rs/zerolog"

// Option configures a Package.
type Option func(p *Package) *Package

// WithLogger sets the logger used while creating the package.  Materialization
// logs to the binder's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Package) *Package {
		p.logger = logger
		return p
	}
}
