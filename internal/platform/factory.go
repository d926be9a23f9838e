package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/advisor/pkg/adapters/fs"
	"github.com/aretw0/advisor/pkg/core"
)

// New wires a Service with an empty catalog.
//
//	svc, err := advisor.New(advisor.WithLogger(logger))
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	loader := o.loader
	if loader == nil {
		switch o.adapter {
		case "fs", "":
			loader = fs.NewLoader(fs.Config{Logger: o.logger})
		default:
			return nil, fmt.Errorf("unknown loader adapter: %s", o.adapter)
		}
	}

	return core.NewService(loader), nil
}

// Open wires a Service and loads the catalog at path in one step.
// It fails when the path is unavailable or yields no courses; the
// service is still returned so callers can inspect its state.
func Open(ctx context.Context, path string, opts ...Option) (*core.Service, error) {
	svc, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := svc.Check(path); err != nil {
		return svc, err
	}

	cat, err := svc.Load(ctx, path)
	if err != nil {
		return svc, err
	}
	if cat.Empty() {
		return svc, fmt.Errorf("%w from %s", core.ErrEmptyCatalog, path)
	}
	return svc, nil
}
