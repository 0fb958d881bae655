package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))

	cmd := newRootCmd(logger, level)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestCheckStdin(t *testing.T) {
	out, err := execute(t, "hello\nworld\n", "check", "-v")
	require.NoError(t, err)
	assert.Equal(t, "-: ok, 2 lines\n", out)

	out, err = execute(t, "hello\n", "check")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckFiles(t *testing.T) {
	good := writeFile(t, "good.txt", "plain text\r\n")
	text := writeFile(t, "text.txt", "café")
	binary := writeFile(t, "binary.dat", "ab\xffcd")

	out, err := execute(t, "", "check", good, text, binary)
	assert.ErrorIs(t, err, errCheckFailed)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, text+`:3: non-ASCII character "é" (U+00E9)`, lines[0])
	assert.Equal(t, binary+":2: byte 0xff, not valid UTF-8", lines[1])
}

func TestCheckJSON(t *testing.T) {
	p := writeFile(t, "mixed.txt", "ok\nüber\n")

	out, err := execute(t, "", "check", "--json", p)
	assert.ErrorIs(t, err, errCheckFailed)

	var reports []fileReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)

	r := reports[0]
	assert.False(t, r.ASCII)
	assert.True(t, r.UTF8)
	require.NotNil(t, r.Offset)
	assert.Equal(t, 3, *r.Offset)
	assert.Equal(t, "0xc3", r.Byte)
	assert.Equal(t, "ü", r.Char)
}

func TestCaret(t *testing.T) {
	out, err := execute(t, "a\tb^c\x1b", "caret", "encode")
	require.NoError(t, err)
	assert.Equal(t, "a^Ib^!c^[", out)

	out, err = execute(t, out, "caret", "decode")
	require.NoError(t, err)
	assert.Equal(t, "a\tb^c\x1b", out)

	_, err = execute(t, "bad^", "caret", "decode")
	assert.Error(t, err)
}

func TestCase(t *testing.T) {
	out, err := execute(t, "Hello, World!", "case", "upper")
	require.NoError(t, err)
	assert.Equal(t, "HELLO, WORLD!", out)

	out, err = execute(t, "Hello, World!", "case", "lower")
	require.NoError(t, err)
	assert.Equal(t, "hello, world!", out)

	_, err = execute(t, "grüß", "case", "upper")
	assert.Error(t, err)
}

func TestLines(t *testing.T) {
	in := "foo\r\nbar\n\n  baz\t\n"

	out, err := execute(t, in, "lines")
	require.NoError(t, err)
	assert.Equal(t, "foo\nbar\n\n  baz^I\n", out)

	out, err = execute(t, in, "lines", "-r", "--trim")
	require.NoError(t, err)
	assert.Equal(t, "baz\n\nbar\nfoo\n", out)

	out, err = execute(t, "a\nb", "lines", "-n")
	require.NoError(t, err)
	assert.Equal(t, "     1\ta\n     2\tb\n", out)
}

func TestLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud", "version")
	assert.Error(t, err)

	out, err := execute(t, "", "--log-level", "debug", "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
