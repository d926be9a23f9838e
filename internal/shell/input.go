package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"

	"github.com/aretw0/advisor/pkg/core"
)

// input reads whole lines or whitespace-delimited tokens through readline.
// Tokens left on a line are served before another line is read, so
// "3 CSCI200" answers both the menu and the course prompt.
type input struct {
	rl          *readline.Instance
	out         io.Writer
	interactive bool
	prompt      string
	fields      []string
	err         error
}

func newInput(in io.Reader, out io.Writer) (*input, error) {
	if in == nil {
		in = strings.NewReader("")
	}
	interactive := isTerminal(in) && isTerminal(out)

	cfg := &readline.Config{
		Stdin:           io.NopCloser(newRawReader(in)),
		Stdout:          out,
		InterruptPrompt: "^C",
		FuncIsTerminal:  func() bool { return interactive },
	}
	if !interactive {
		noop := func() error { return nil }
		cfg.FuncMakeRaw = noop
		cfg.FuncExitRaw = noop
		cfg.FuncOnWidthChanged = func(func()) {}
		cfg.FuncGetWidth = func() int { return 80 }
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize input: %w", err)
	}
	return &input{rl: rl, out: out, interactive: interactive}, nil
}

// Prompt shows p before the next read. On a terminal readline draws it
// with the edit line; otherwise it is written straight to the output.
func (in *input) Prompt(p string) {
	if in.interactive && len(in.fields) == 0 {
		in.prompt += p
		return
	}
	_, _ = io.WriteString(in.out, p)
}

// Line reads the next full line, dropping any tokens left on the previous
// one. Spaces inside the line are kept.
func (in *input) Line() (string, error) {
	in.fields = nil
	return in.readLine()
}

// Token returns the next whitespace-delimited token, reading lines until
// one has a token. Blank lines are skipped.
func (in *input) Token() (string, error) {
	for len(in.fields) == 0 {
		line, err := in.readLine()
		if err != nil {
			return "", err
		}
		in.fields = strings.FieldsFunc(line, isSpace)
	}

	tok := in.fields[0]
	in.fields = in.fields[1:]
	return tok, nil
}

// DiscardLine drops the tokens left on the current line.
func (in *input) DiscardLine() {
	in.fields = nil
}

// Close stops readline's reader.
func (in *input) Close() error {
	return in.rl.Close()
}

func (in *input) readLine() (string, error) {
	if in.err != nil {
		return "", in.err
	}

	in.rl.SetPrompt(in.prompt)
	in.prompt = ""

	line, err := in.rl.Readline()
	if err != nil {
		in.err = closed(err)
		return "", in.err
	}
	return unescapeBytes(line), nil
}

func closed(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return fmt.Errorf("%w: %w", core.ErrInputClosed, err)
	}
	return fmt.Errorf("failed to read input: %w", err)
}

// isSpace matches the C locale isspace set. Bytes outside ASCII are never
// separators.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}

// escapeBase maps a byte that is not valid UTF-8 to the private-use rune
// escapeBase+b, so it survives readline's rune decoding. Genuine input in
// U+10FF80..U+10FFFF decodes to raw bytes as well.
const escapeBase = 0x10FF00

// rawReader re-encodes invalid UTF-8 bytes as escape runes. Incomplete
// sequences at the end of a chunk are held until more input arrives.
type rawReader struct {
	r       io.Reader
	pending []byte
	out     []byte
	err     error
}

func newRawReader(r io.Reader) *rawReader {
	return &rawReader{r: r}
}

func (rr *rawReader) Read(p []byte) (int, error) {
	buf := make([]byte, 4096)
	for len(rr.out) == 0 && rr.err == nil {
		n, err := rr.r.Read(buf)
		rr.err = err
		rr.pending = append(rr.pending, buf[:n]...)
		rr.escape()
	}

	if len(rr.out) == 0 {
		return 0, rr.err
	}
	n := copy(p, rr.out)
	rr.out = rr.out[n:]
	return n, nil
}

func (rr *rawReader) escape() {
	data := rr.pending
	for len(data) > 0 {
		if !utf8.FullRune(data) && rr.err == nil {
			break
		}
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			rr.out = utf8.AppendRune(rr.out, escapeBase+rune(data[0]))
		} else {
			rr.out = append(rr.out, data[:size]...)
		}
		data = data[size:]
	}
	rr.pending = append(rr.pending[:0], data...)
}

func unescapeBytes(s string) string {
	if !strings.ContainsFunc(s, isEscaped) {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if isEscaped(r) {
			b.WriteByte(byte(r - escapeBase))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isEscaped(r rune) bool {
	return r >= escapeBase+0x80 && r <= escapeBase+0xFF
}
