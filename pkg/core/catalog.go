package core

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Catalog is the in-memory table of loaded courses keyed by course number.
// A Catalog is immutable once built; a reload produces a new one.
type Catalog struct {
	courses  map[string]Course
	source   string
	loadedAt time.Time
	stats    LoadStats
}

// NewCatalog builds a Catalog from the given courses.
// Invalid courses are dropped and later duplicates replace earlier ones.
func NewCatalog(courses ...Course) *Catalog {
	b := NewBuilder("")
	for _, c := range courses {
		if err := c.Validate(); err != nil {
			continue
		}
		b.Add(c)
	}
	return b.Build(LoadStats{Lines: len(courses)})
}

// Get retrieves a course by exact course number.
func (c *Catalog) Get(id string) (Course, error) {
	course, ok := c.courses[id]
	if !ok {
		return Course{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return clone(course), nil
}

// List returns every course in no particular order.
func (c *Catalog) List() []Course {
	out := make([]Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, clone(course))
	}
	return out
}

// Sorted returns every course ordered by course number (byte order).
func (c *Catalog) Sorted() []Course {
	out := c.List()
	slices.SortFunc(out, func(a, b Course) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Match returns the courses whose number matches a glob pattern such as
// "CSCI3*", ordered by course number.
func (c *Catalog) Match(pattern string) ([]Course, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var out []Course
	for _, course := range c.Sorted() {
		ok, err := doublestar.Match(pattern, course.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, course)
		}
	}
	return out, nil
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Empty reports whether the catalog holds no courses.
func (c *Catalog) Empty() bool {
	return len(c.courses) == 0
}

// Source returns the location the catalog was loaded from, if any.
func (c *Catalog) Source() string {
	return c.source
}

// Stats returns the counters recorded while building the catalog.
func (c *Catalog) Stats() LoadStats {
	return c.stats
}

func clone(c Course) Course {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	return c
}

// Builder assembles a Catalog off to the side so readers never observe a
// partially loaded one.
type Builder struct {
	source      string
	courses     map[string]Course
	overwritten int
}

// NewBuilder creates an empty builder for the given source.
func NewBuilder(source string) *Builder {
	return &Builder{
		source:  source,
		courses: make(map[string]Course),
	}
}

// Add inserts a course, replacing any course with the same number.
// It returns true when an existing entry was replaced.
func (b *Builder) Add(c Course) bool {
	_, exists := b.courses[c.ID]
	b.courses[c.ID] = clone(c)
	if exists {
		b.overwritten++
	}
	return exists
}

// Build seals the builder into a Catalog. The Loaded and Overwritten
// counters of stats are filled in by the builder.
func (b *Builder) Build(stats LoadStats) *Catalog {
	stats.Loaded = len(b.courses)
	stats.Overwritten = b.overwritten

	courses := b.courses
	b.courses = make(map[string]Course)
	b.overwritten = 0

	return &Catalog{
		courses:  courses,
		source:   b.source,
		loadedAt: time.Now(),
		stats:    stats,
	}
}
