package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/advisor/pkg/core"
)

// Config holds the configuration for the filesystem loader.
type Config struct {
	Logger *slog.Logger
}

// Loader implements core.Loader over comma-delimited text files.
type Loader struct {
	config     Config
	loads      int
	lastSource string
	lastErr    error
}

// NewLoader creates a new file-backed loader.
func NewLoader(config Config) *Loader {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{config: config}
}

// Check reports whether path exists and can be stat'ed.
func (l *Loader) Check(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %w", core.ErrSourceUnavailable, err)
	}
	return nil
}

// Load reads the file at path and builds a Catalog from it.
//
// Workflow:
//  1. Open the file. Failure yields an empty catalog and ErrSourceUnavailable.
//  2. Read it line by line; exactly-empty lines are skipped silently.
//  3. Parse each remaining line; invalid records are logged and skipped.
//  4. Insert valid records, later lines replacing earlier ones with the same ID.
func (l *Loader) Load(ctx context.Context, path string) (*core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", core.ErrSourceUnavailable, err)
		l.record(path, err)
		return core.NewBuilder(path).Build(core.LoadStats{}), err
	}
	defer f.Close()

	return l.LoadReader(ctx, f, path)
}

// LoadReader builds a Catalog from r. The source name is used for
// diagnostics and recorded on the catalog.
func (l *Loader) LoadReader(ctx context.Context, r io.Reader, source string) (*core.Catalog, error) {
	b := core.NewBuilder(source)
	var stats core.LoadStats

	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			l.record(source, err)
			return core.NewBuilder(source).Build(core.LoadStats{}), err
		}

		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			err := fmt.Errorf("failed to read %s: %w", source, readErr)
			l.record(source, err)
			return core.NewBuilder(source).Build(core.LoadStats{}), err
		}
		if raw == "" && readErr != nil {
			break
		}

		stats.Lines++
		l.apply(b, &stats, source, lineNo, trimEOL(raw))

		if readErr != nil {
			break
		}
	}

	cat := b.Build(stats)
	l.record(source, nil)
	l.config.Logger.Debug("course catalog loaded",
		"source", source,
		"courses", cat.Len(),
		"lines", stats.Lines,
		"blank", stats.Blank,
		"invalid", stats.Invalid,
		"overwritten", cat.Stats().Overwritten,
	)
	return cat, nil
}

func (l *Loader) apply(b *core.Builder, stats *core.LoadStats, source string, lineNo int, line string) {
	if line == "" {
		stats.Blank++
		return
	}

	course := ParseLine(line)
	if err := course.Validate(); err != nil {
		stats.Invalid++
		l.config.Logger.Warn("skipping invalid course line",
			"source", source,
			"line", lineNo,
			"content", line,
			"error", err,
		)
		return
	}

	if b.Add(course) {
		l.config.Logger.Debug("course replaced by later line", "id", course.ID, "line", lineNo)
	}
}

func (l *Loader) record(source string, err error) {
	l.loads++
	l.lastSource = source
	l.lastErr = err
}

// trimEOL removes the line terminator ("\n" or "\r\n"). Every other byte,
// including surrounding whitespace, is preserved. A line holding only "\r"
// keeps it, so it is reported as invalid rather than skipped as blank.
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	if s == "\r" {
		return s
	}
	return strings.TrimSuffix(s, "\r")
}

var _ core.Loader = (*Loader)(nil)
