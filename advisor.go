package advisor

import (
	"context"
	"log/slog"

	"github.com/aretw0/advisor/internal/platform"
	"github.com/aretw0/advisor/pkg/core"
)

// --- Types ---

// Course is a public alias for the domain record.
type Course = core.Course

// Catalog is a public alias for the in-memory course table.
type Catalog = core.Catalog

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service and its loader.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithLoader allows injecting a custom loader.
func WithLoader(loader core.Loader) Option {
	return platform.WithLoader(loader)
}

// WithAdapter allows specifying the loader adapter by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// --- Factory ---

// New creates a new Service with an empty catalog.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// Open creates a new Service and loads the catalog at path.
func Open(ctx context.Context, path string, opts ...Option) (*core.Service, error) {
	return platform.Open(ctx, path, opts...)
}
