package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/advisor/pkg/core"
)

func openInput(t *testing.T, r io.Reader) (*input, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	in, err := newInput(r, &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = in.Close() })
	return in, &out
}

func TestInput(t *testing.T) {
	in, _ := openInput(t, strings.NewReader("CS 300 input.csv\r\n  4  abc\n\n  CSCI100\ntail"))

	line, err := in.Line()
	require.NoError(t, err)
	assert.Equal(t, "CS 300 input.csv", line)

	tok, err := in.Token()
	require.NoError(t, err)
	assert.Equal(t, "4", tok)

	in.DiscardLine()

	tok, err = in.Token()
	require.NoError(t, err)
	assert.Equal(t, "CSCI100", tok, "blank lines are skipped while looking for a token")

	tok, err = in.Token()
	require.NoError(t, err)
	assert.Equal(t, "tail", tok, "a token may end at EOF")

	_, err = in.Token()
	assert.ErrorIs(t, err, core.ErrInputClosed)

	_, err = in.Line()
	assert.ErrorIs(t, err, core.ErrInputClosed, "end of input is sticky")
}

func TestInput_LineWithoutNewline(t *testing.T) {
	in, _ := openInput(t, strings.NewReader("courses.csv"))

	line, err := in.Line()
	require.NoError(t, err)
	assert.Equal(t, "courses.csv", line)
}

func TestInput_TokensShareLine(t *testing.T) {
	in, _ := openInput(t, strings.NewReader("3  CSCI200 extra\n9\n"))

	var got []string
	for range 4 {
		tok, err := in.Token()
		require.NoError(t, err)
		got = append(got, tok)
	}
	assert.Equal(t, []string{"3", "CSCI200", "extra", "9"}, got)
}

func TestInput_Prompt(t *testing.T) {
	in, out := openInput(t, strings.NewReader("1 2\n"))

	in.Prompt("first: ")
	_, err := in.Token()
	require.NoError(t, err)

	in.Prompt("second: ")
	assert.Equal(t, "first: second: ", out.String(), "prompts go to the output when no terminal is attached")
}

func TestInput_RawBytes(t *testing.T) {
	tests := []struct {
		name string
		r    io.Reader
	}{
		{"Whole", strings.NewReader("CS\xff1 caf\xc3\xa9 \xc3\n")},
		{"One Byte Reads", iotest.OneByteReader(strings.NewReader("CS\xff1 caf\xc3\xa9 \xc3\n"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := openInput(t, tt.r)

			var got []string
			for range 3 {
				tok, err := in.Token()
				require.NoError(t, err)
				got = append(got, tok)
			}
			assert.Equal(t, []string{"CS\xff1", "café", "\xc3"}, got, "bytes are returned exactly as read")
		})
	}
}

func TestInput_NonASCIISpaceIsNotSeparator(t *testing.T) {
	in, _ := openInput(t, strings.NewReader("A\u00a0B\n"))

	tok, err := in.Token()
	require.NoError(t, err)
	assert.Equal(t, "A\u00a0B", tok)
}
