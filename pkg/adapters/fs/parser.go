package fs

import (
	"strings"

	"github.com/aretw0/advisor/pkg/core"
)

// Delimiter separates the fields of a course line.
const Delimiter = ","

// ParseLine converts one line of the form "id,title[,prereq]*" into a Course.
//
// Fields are kept byte for byte (no trimming). Empty prerequisite fields
// are dropped, so trailing delimiters never produce phantom prerequisites.
// A line with fewer than two fields yields a course with an empty ID or
// Title; ParseLine never fails, callers decide via Course.Validate.
func ParseLine(line string) core.Course {
	fields := strings.Split(line, Delimiter)

	course := core.Course{ID: fields[0]}
	if len(fields) < 2 {
		return course
	}
	course.Title = fields[1]

	for _, f := range fields[2:] {
		if f == "" {
			continue
		}
		course.Prerequisites = append(course.Prerequisites, f)
	}
	return course
}

// FormatLine is the inverse of ParseLine for valid courses.
func FormatLine(c core.Course) string {
	fields := make([]string, 0, 2+len(c.Prerequisites))
	fields = append(fields, c.ID, c.Title)
	fields = append(fields, c.Prerequisites...)
	return strings.Join(fields, Delimiter)
}
