// Package core holds the course domain: the Course record, the read-only
// Catalog built from a source file, and the Service that owns it.
package core

import "fmt"

// Course is the central entity of the domain.
// It represents one catalog entry identified by its course number.
type Course struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
}

// Validate reports whether the course can enter a Catalog.
// Prerequisites are not checked against other courses.
func (c Course) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing course number", ErrInvalidRecord)
	}
	if c.Title == "" {
		return fmt.Errorf("%w: course %s has no title", ErrInvalidRecord, c.ID)
	}
	return nil
}

// HasPrerequisites reports whether the course lists any prerequisite.
func (c Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

// LoadStats summarizes a single load.
type LoadStats struct {
	Lines       int `json:"lines"`
	Loaded      int `json:"loaded"`
	Blank       int `json:"blank"`
	Invalid     int `json:"invalid"`
	Overwritten int `json:"overwritten"`
}
