package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// CatalogState exposes catalog internals for observability.
type CatalogState struct {
	Size     int       `json:"size"`
	Source   string    `json:"source,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
	Stats    LoadStats `json:"stats"`
}

// State implements introspection.Introspectable.
func (c *Catalog) State() any {
	return CatalogState{
		Size:     len(c.courses),
		Source:   c.source,
		LoadedAt: c.loadedAt,
		Stats:    c.stats,
	}
}

// ComponentType implements introspection.Component.
func (c *Catalog) ComponentType() string {
	return "catalog"
}

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Path       string       `json:"path"`
	LoaderType string       `json:"loader_type"`
	Catalog    CatalogState `json:"catalog"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	loaderType := "unknown"
	if s.loader != nil {
		loaderType = "loader"
		if comp, ok := s.loader.(introspection.Component); ok {
			loaderType = comp.ComponentType()
		}
	}

	return ServiceState{
		Path:       s.path,
		LoaderType: loaderType,
		Catalog:    s.catalog.State().(CatalogState),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
var _ introspection.Introspectable = (*Catalog)(nil)
var _ introspection.Component = (*Catalog)(nil)
