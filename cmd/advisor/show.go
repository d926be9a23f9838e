package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/advisor/pkg/adapters/fs"
	"github.com/aretw0/advisor/pkg/core"
	"github.com/aretw0/advisor/pkg/render"
)

var (
	showFormat string
)

var showCmd = &cobra.Command{
	Use:   "show [course number]",
	Short: "Print a course and its prerequisites",
	Long:  `Load the course file given with --file and print one course. Outputs plain text by default, or json/yaml/csv with --format.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		course, err := svc.GetCourse(args[0])
		if err != nil {
			render.NotFound(cmd.OutOrStdout(), args[0])
			return &reportedError{err: err}
		}
		return writeCourse(cmd.OutOrStdout(), course, showFormat)
	},
}

func writeCourse(w io.Writer, course core.Course, format string) error {
	switch format {
	case "", "text":
		render.Course(w, course)
		return nil
	case "table":
		render.Table(w, []core.Course{course})
		return nil
	}

	s, err := fs.SerializerFor(format)
	if err != nil {
		return err
	}
	return s.SerializeCourse(w, course)
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showFormat, "format", "text", "Output format: text, table, json, yaml or csv")
}
