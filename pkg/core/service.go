package core

import (
	"context"
	"errors"
)

// Loader defines the contract for building a Catalog from a source.
// Adhering to this interface keeps the core independent of where course
// data lives (local file, embedded fixture, test double).
type Loader interface {
	// Check reports whether the source at path can be read.
	// Failures wrap ErrSourceUnavailable.
	Check(path string) error

	// Load builds a complete Catalog from path. On failure it still
	// returns an empty, non-nil Catalog alongside the error.
	Load(ctx context.Context, path string) (*Catalog, error)
}

// Service owns the current Catalog and the path it was loaded from.
type Service struct {
	loader  Loader
	catalog *Catalog
	path    string
}

// NewService creates a new Service with an empty catalog.
func NewService(loader Loader) *Service {
	return &Service{
		loader:  loader,
		catalog: NewCatalog(),
	}
}

// Check verifies that path is readable before a load is attempted.
func (s *Service) Check(path string) error {
	return s.loader.Check(path)
}

// Load builds a new catalog from path and replaces the current one.
// The replacement happens even when the load fails, in which case the
// service is left with an empty catalog.
func (s *Service) Load(ctx context.Context, path string) (*Catalog, error) {
	cat, err := s.loader.Load(ctx, path)
	if cat == nil {
		cat = NewBuilder(path).Build(LoadStats{})
	}
	s.catalog = cat
	s.path = path
	return cat, err
}

// Reload loads again from the last path passed to Load.
func (s *Service) Reload(ctx context.Context) (*Catalog, error) {
	if s.path == "" {
		return s.catalog, errors.New("no course source has been loaded yet")
	}
	return s.Load(ctx, s.path)
}

// Path returns the path of the last load.
func (s *Service) Path() string {
	return s.path
}

// Catalog returns the current catalog. It is never nil.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// GetCourse retrieves a course from the current catalog.
func (s *Service) GetCourse(id string) (Course, error) {
	return s.catalog.Get(id)
}

// ListCourses returns all courses in no particular order.
func (s *Service) ListCourses() []Course {
	return s.catalog.List()
}

// SortedCourses returns all courses ordered by course number.
func (s *Service) SortedCourses() []Course {
	return s.catalog.Sorted()
}
