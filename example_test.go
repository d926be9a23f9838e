package advisor_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/advisor"
)

// Example_basic demonstrates how to load a course file and look up a course.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "advisor-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "courses.csv")
	data := "CSCI200,Data Structures,CSCI101\nCSCI101,Introduction to Programming in C++,CSCI100\nCSCI100,Introduction to Computer Science\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		log.Fatal(err)
	}

	svc, err := advisor.Open(context.Background(), path)
	if err != nil {
		log.Fatal(err)
	}

	course, err := svc.GetCourse("CSCI200")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %s (requires %v)\n", course.ID, course.Title, course.Prerequisites)

	for _, c := range svc.SortedCourses() {
		fmt.Println(c.ID)
	}
	// Output:
	// CSCI200: Data Structures (requires [CSCI101])
	// CSCI100
	// CSCI101
	// CSCI200
}
