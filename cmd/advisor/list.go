package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/advisor"
	"github.com/aretw0/advisor/pkg/adapters/fs"
	"github.com/aretw0/advisor/pkg/core"
	"github.com/aretw0/advisor/pkg/render"
)

var (
	listFormat string
	listMatch  string
	listStats  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog sorted by course number",
	Long: `Load the course file given with --file and print every course sorted by
course number. Use --match to filter by a glob such as "CSCI3*".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openCatalog(cmd)
		if err != nil {
			return err
		}

		courses := svc.SortedCourses()
		if listMatch != "" {
			courses, err = svc.Catalog().Match(listMatch)
			if err != nil {
				return err
			}
		}

		if listStats {
			s := svc.Catalog().Stats()
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "lines=%d loaded=%d blank=%d invalid=%d overwritten=%d\n",
				s.Lines, s.Loaded, s.Blank, s.Invalid, s.Overwritten)
		}

		return writeCourses(cmd.OutOrStdout(), courses, listFormat)
	},
}

// openCatalog loads the file named by --file for the non-interactive commands.
func openCatalog(cmd *cobra.Command) (*core.Service, error) {
	if filePath == "" {
		return nil, errors.New("--file is required")
	}
	return advisor.Open(cmd.Context(), filePath, advisor.WithLogger(slog.Default()))
}

func writeCourses(w io.Writer, courses []core.Course, format string) error {
	switch format {
	case "", "text":
		render.SortedList(w, courses)
		return nil
	case "table":
		render.Table(w, courses)
		return nil
	}

	s, err := fs.SerializerFor(format)
	if err != nil {
		return err
	}
	return s.Serialize(w, courses)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFormat, "format", "text", "Output format: text, table, json, yaml or csv")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list course numbers matching this glob")
	listCmd.Flags().BoolVar(&listStats, "stats", false, "Print load statistics to stderr")
}
