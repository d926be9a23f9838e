package fs

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/advisor/pkg/core"
)

// Serializer defines how courses are written in a specific format.
type Serializer interface {
	// Serialize writes a list of courses to w.
	Serialize(w io.Writer, courses []core.Course) error
	// SerializeCourse writes a single course to w.
	SerializeCourse(w io.Writer, course core.Course) error
}

// DefaultSerializers returns the standard set of serializers keyed by format name.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		"json": NewJSONSerializer(),
		"yaml": NewYAMLSerializer(),
		"yml":  NewYAMLSerializer(),
		"csv":  NewCSVSerializer(),
	}
}

// Formats returns the names of the default serializers, sorted.
func Formats() []string {
	names := make([]string, 0, 4)
	for name := range DefaultSerializers() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SerializerFor looks up a default serializer by format name.
func SerializerFor(format string) (Serializer, error) {
	s, ok := DefaultSerializers()[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %v)", format, Formats())
	}
	return s, nil
}

// --- JSON Serializer ---

// JSONSerializer writes indented JSON.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Serialize(w io.Writer, courses []core.Course) error {
	return s.encode(w, normalize(courses))
}

func (s *JSONSerializer) SerializeCourse(w io.Writer, course core.Course) error {
	return s.encode(w, normalize([]core.Course{course})[0])
}

func (s *JSONSerializer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- YAML Serializer ---

// YAMLSerializer writes YAML with two-space indentation.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Serialize(w io.Writer, courses []core.Course) error {
	return s.encode(w, normalize(courses))
}

func (s *YAMLSerializer) SerializeCourse(w io.Writer, course core.Course) error {
	return s.encode(w, normalize([]core.Course{course})[0])
}

func (s *YAMLSerializer) encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return enc.Close()
}

// --- CSV Serializer ---

// CSVSerializer writes courses back in the loader's input format, one
// course per line with no header and no quoting, so its output can be
// loaded again.
type CSVSerializer struct{}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

func (s *CSVSerializer) Serialize(w io.Writer, courses []core.Course) error {
	for _, c := range courses {
		if err := s.SerializeCourse(w, c); err != nil {
			return err
		}
	}
	return nil
}

func (s *CSVSerializer) SerializeCourse(w io.Writer, course core.Course) error {
	_, err := io.WriteString(w, FormatLine(course)+"\n")
	return err
}

// --- Helpers ---

// normalize replaces nil prerequisite lists with empty ones so encoders
// emit [] instead of null.
func normalize(courses []core.Course) []core.Course {
	out := slices.Clone(courses)
	for i := range out {
		if out[i].Prerequisites == nil {
			out[i].Prerequisites = []string{}
		}
	}
	return out
}
