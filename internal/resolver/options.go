package resolver

import (
	"log/slog"

	"srgmap/internal/table"
)

// Environment supplies the running environment's mode flag.
type Environment interface {
	// DevMode reports whether the environment runs against developer (MCP)
	// names rather than obfuscated ones.
	DevMode() bool
}

// StaticEnvironment is an Environment with a fixed mode.
type StaticEnvironment bool

// DevMode implements Environment.
func (e StaticEnvironment) DevMode() bool { return bool(e) }

// Option configures a Resolver.
type Option func(*Resolver)

// WithDevMode fixes the mode used by ResolveField and ResolveMethod.
func WithDevMode(dev bool) Option {
	return func(r *Resolver) {
		r.env = StaticEnvironment(dev)
	}
}

// WithEnvironment makes the resolver consult env for the mode on every
// resolution.
func WithEnvironment(env Environment) Option {
	return func(r *Resolver) {
		if env != nil {
			r.env = env
		}
	}
}

// WithResources overrides the table names read from the provider.
func WithResources(res table.Resources) Option {
	return func(r *Resolver) {
		r.resources = res
	}
}

// WithLogger sets the logger used while loading tables.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}
