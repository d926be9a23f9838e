package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/advisor"
	"github.com/aretw0/advisor/internal/shell"
)

// Exit codes.
const (
	ExitSuccess = 0 // Normal exit through the menu
	ExitError   = 1 // Unavailable source, empty catalog, invalid arguments
)

var (
	verbose  bool
	filePath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Browse a course catalog loaded from a comma-delimited file",
	Long: `Advisor loads course records (course number, title, prerequisites) from a
comma-delimited text file and lets you browse them through a numbered menu.

Each line of the file has the form:
  CSCI300,Introduction to Algorithms,CSCI200,MATH201`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), filePath)
	},
}

// runShell starts an interactive session. Errors it returns have already
// been shown to the user.
func runShell(ctx context.Context, in io.Reader, out, errOut io.Writer, path string) error {
	svc, err := advisor.New(advisor.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	sh := shell.New(svc, shell.Config{
		In:     in,
		Out:    out,
		Err:    errOut,
		Logger: slog.Default(),
		Path:   path,
	})
	if err := sh.Run(ctx); err != nil {
		return &reportedError{err: err}
	}
	return nil
}

// reportedError marks failures that were already explained to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitError
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		slog.Debug("exiting", "error", err)
	}
	os.Exit(exitCode(err))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "Course file to load (skips the path prompt)")
}
