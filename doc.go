// Package advisor is the Composition Root for the course advising tool.
//
// It connects the course domain (pkg/core) with the loader adapter that
// reads comma-delimited course files (pkg/adapters/fs).
//
// Input format, one course per line, no header:
//
//	CSCI300,Introduction to Algorithms,CSCI200,MATH201
//	CSCI100,Introduction to Computer Science
//
// Usage:
//
//	svc, err := advisor.Open(ctx, "courses.csv",
//		advisor.WithLogger(logger),
//	)
//
//	course, err := svc.GetCourse("CSCI300")
//	for _, c := range svc.SortedCourses() { ... }
package advisor
