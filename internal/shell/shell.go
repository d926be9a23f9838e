// Package shell implements the numbered-menu console for browsing a course
// catalog.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/aretw0/advisor/pkg/core"
	"github.com/aretw0/advisor/pkg/render"
)

const (
	promptFilePath = "Enter the CSV file path (e.g., CS 300 ABCU_Advising_Program_Input.csv): "
	promptChoice   = "Enter your choice: "
	promptCourse   = "Enter the course number: "

	msgFileMissing    = "Error: File does not exist. Please check the file path."
	msgLoaded         = "Courses loaded successfully!"
	msgNothingLoaded  = "No courses were loaded."
	msgNothingAtStart = "No courses were loaded. Exiting program."
	msgNotANumber     = "Invalid input. Please enter a valid number: "
	msgOutOfRange     = "Invalid choice. Please enter a number between 1 and 9: "
	msgUnknownOption  = "Invalid choice. Please enter a valid option."
	msgGoodbye        = "Exiting program. Goodbye!"
)

// State is a phase of the shell's lifecycle.
type State int

const (
	AwaitingFilePath State = iota
	Ready
	MenuLoop
	Exited
)

func (s State) String() string {
	switch s {
	case AwaitingFilePath:
		return "awaiting-file-path"
	case Ready:
		return "ready"
	case MenuLoop:
		return "menu-loop"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Option is a menu entry number.
type Option int

const (
	OptionLoad          Option = 1
	OptionDisplayAll    Option = 2
	OptionDisplayCourse Option = 3
	OptionSortedList    Option = 4
	OptionPrintCourse   Option = 5
	OptionExit          Option = 9

	minChoice = 1
	maxChoice = 9
)

var menu = []struct {
	option Option
	label  string
}{
	{OptionLoad, "Load Course Data"},
	{OptionDisplayAll, "Display All Courses"},
	{OptionDisplayCourse, "Display Course Information"},
	{OptionSortedList, "Display Sorted List of Courses"},
	{OptionPrintCourse, "Print Course and Prerequisites"},
	{OptionExit, "Exit"},
}

// Config holds the shell's I/O wiring.
type Config struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
	// Path skips the file path prompt when set.
	Path string
}

// Shell drives the menu loop over a Service.
// It owns the service for the lifetime of the session.
type Shell struct {
	svc    *core.Service
	src    io.Reader
	in     *input
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
	path   string
	state  State
}

// New creates a shell over svc.
func New(svc *core.Service, cfg Config) *Shell {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Err == nil {
		cfg.Err = cfg.Out
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Shell{
		svc:    svc,
		src:    cfg.In,
		out:    cfg.Out,
		errOut: cfg.Err,
		logger: cfg.Logger,
		path:   cfg.Path,
		state:  AwaitingFilePath,
	}
}

// State returns the current lifecycle phase.
func (s *Shell) State() State {
	return s.state
}

// Run reads the source path, performs the initial load and serves the menu
// until the user exits.
//
// It returns an error wrapping core.ErrSourceUnavailable when the path is
// not accessible and core.ErrEmptyCatalog when the initial load yields no
// courses. Both are reported to the user before returning. Closing the
// input while in the menu ends the session normally.
func (s *Shell) Run(ctx context.Context) error {
	in, err := newInput(s.src, s.out)
	if err != nil {
		s.state = Exited
		return err
	}
	defer func() { _ = in.Close() }()
	s.in = in

	path := s.path
	if path == "" {
		s.in.Prompt(promptFilePath)
		line, err := s.in.Line()
		if err != nil {
			s.state = Exited
			return err
		}
		path = line
	}

	if err := s.svc.Check(path); err != nil {
		_, _ = fmt.Fprintln(s.errOut, msgFileMissing)
		s.state = Exited
		return err
	}
	s.state = Ready

	if cat := s.load(ctx, path); cat.Empty() {
		_, _ = fmt.Fprintln(s.out, msgNothingAtStart)
		s.state = Exited
		return fmt.Errorf("%w from %s", core.ErrEmptyCatalog, path)
	}
	_, _ = fmt.Fprintln(s.out, msgLoaded)

	return s.loop(ctx)
}

func (s *Shell) loop(ctx context.Context) error {
	s.state = MenuLoop
	defer func() { s.state = Exited }()

	for {
		s.showMenu()

		choice, err := s.readChoice()
		if err == nil {
			var exit bool
			exit, err = s.dispatch(ctx, choice)
			if exit {
				return nil
			}
		}
		if errors.Is(err, core.ErrInputClosed) {
			s.logger.Debug("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) showMenu() {
	_, _ = fmt.Fprintln(s.out)
	_, _ = fmt.Fprintln(s.out, "Menu:")
	for _, entry := range menu {
		_, _ = fmt.Fprintf(s.out, "%d. %s\n", entry.option, entry.label)
	}
	s.in.Prompt(promptChoice)
}

// readChoice blocks until the user enters a number in [1,9].
func (s *Shell) readChoice() (Option, error) {
	for {
		tok, err := s.in.Token()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			s.logger.Debug("rejected menu input", "input", tok, "error", core.ErrInvalidMenuChoice)
			s.in.DiscardLine()
			s.in.Prompt(msgNotANumber)
			continue
		}

		if err := validateChoice(n); err != nil {
			s.logger.Debug("rejected menu input", "input", tok, "error", err)
			s.in.Prompt(msgOutOfRange)
			continue
		}
		return Option(n), nil
	}
}

func validateChoice(n int) error {
	if n < minChoice || n > maxChoice {
		return fmt.Errorf("%w: %d is outside %d-%d", core.ErrInvalidMenuChoice, n, minChoice, maxChoice)
	}
	return nil
}

func (s *Shell) dispatch(ctx context.Context, choice Option) (bool, error) {
	switch choice {
	case OptionLoad:
		if cat := s.load(ctx, s.svc.Path()); cat.Empty() {
			_, _ = fmt.Fprintln(s.out, msgNothingLoaded)
		} else {
			_, _ = fmt.Fprintln(s.out, msgLoaded)
		}

	case OptionDisplayAll:
		render.All(s.out, s.svc.ListCourses())

	case OptionDisplayCourse, OptionPrintCourse:
		return false, s.lookup()

	case OptionSortedList:
		render.SortedList(s.out, s.svc.SortedCourses())

	case OptionExit:
		_, _ = fmt.Fprintln(s.out, msgGoodbye)
		return true, nil

	default:
		_, _ = fmt.Fprintln(s.out, msgUnknownOption)
	}
	return false, nil
}

func (s *Shell) lookup() error {
	s.in.Prompt(promptCourse)
	id, err := s.in.Token()
	if err != nil {
		return err
	}
	render.Lookup(s.out, s.svc.Catalog(), id)
	return nil
}

// load replaces the service's catalog and reports failures on the error
// stream. It always returns the catalog now held by the service.
func (s *Shell) load(ctx context.Context, path string) *core.Catalog {
	cat, err := s.svc.Load(ctx, path)
	switch {
	case errors.Is(err, core.ErrSourceUnavailable):
		_, _ = fmt.Fprintf(s.errOut, "Error: Could not open file %s\n", path)
	case err != nil:
		_, _ = fmt.Fprintf(s.errOut, "Error: Could not read file %s: %v\n", path, err)
	}

	s.logger.Debug("catalog loaded", "path", path, "state", s.svc.State())
	return cat
}
