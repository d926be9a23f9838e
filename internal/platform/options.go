package platform

import (
	"log/slog"

	"github.com/aretw0/advisor/pkg/core"
)

// options holds the internal configuration for the advisor service.
type options struct {
	loader  core.Loader
	logger  *slog.Logger
	adapter string
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		loader:  nil,
		logger:  nil,
		adapter: "fs",
	}
}

// WithLogger sets the logger for the service and its loader.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLoader allows injecting a custom loader (e.g. a test double).
// If provided, the adapter setting is ignored.
func WithLoader(loader core.Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithAdapter allows specifying the loader adapter by name.
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}
