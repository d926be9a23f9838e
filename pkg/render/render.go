// Package render formats courses for the console.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/aretw0/advisor/pkg/core"
)

// Course writes a course and its prerequisites.
func Course(w io.Writer, c core.Course) {
	_, _ = fmt.Fprintf(w, "Course Number: %s, Title: %s\n", c.ID, c.Title)
	if !c.HasPrerequisites() {
		_, _ = fmt.Fprintln(w, "No prerequisites")
		return
	}
	_, _ = fmt.Fprintf(w, "Prerequisites: %s\n", strings.Join(c.Prerequisites, " "))
}

// All writes every course in the given order.
func All(w io.Writer, courses []core.Course) {
	for _, c := range courses {
		Course(w, c)
	}
}

// SortedList writes the header and one summary line per course.
// Courses are expected to be sorted already.
func SortedList(w io.Writer, courses []core.Course) {
	if len(courses) == 0 {
		_, _ = fmt.Fprintln(w, "No courses available.")
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Sorted List of Courses:")
	for _, c := range courses {
		_, _ = fmt.Fprintf(w, "Course Number: %s, Title: %s\n", c.ID, c.Title)
	}
}

// NotFound writes the message shown when a lookup misses.
func NotFound(w io.Writer, id string) {
	_, _ = fmt.Fprintf(w, "Error: Course with number %s not found.\n", id)
}

// Lookup writes the course for id, or the not-found message.
func Lookup(w io.Writer, cat *core.Catalog, id string) {
	c, err := cat.Get(id)
	if err != nil {
		NotFound(w, id)
		return
	}
	Course(w, c)
}

// Table writes courses as a table followed by a row count.
func Table(w io.Writer, courses []core.Course) {
	if len(courses) == 0 {
		_, _ = fmt.Fprintln(w, "(0 courses)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Course Number", "Title", "Prerequisites"})
	for _, c := range courses {
		prereqs := "-"
		if c.HasPrerequisites() {
			prereqs = strings.Join(c.Prerequisites, " ")
		}
		t.AppendRow(table.Row{c.ID, c.Title, prereqs})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d courses)\n", len(courses))
}
