package img2ascii

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(t *testing.T, lines ...string) *Document {
	t.Helper()
	doc, err := FormatLines(strings.Split(strings.Join(lines, ""), ""), len(lines[0]))
	require.NoError(t, err)
	return doc
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, testDocument(t, "@@", "  ")))
	assert.Equal(t, "@@\n  \n", buf.String())
}

func TestWriteFileExactBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale content\n", 50)), 0o644))

	require.NoError(t, WriteFile(path, testDocument(t, "ab", "cd", "ef")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd\nef", string(got), "file is truncated and has no trailing newline")
}

func TestWriteFileToDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	err := WriteFile(dir, testDocument(t, "x"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindWrite))
	assert.Contains(t, err.Error(), dir)
}

func TestSaveWritesTextForEveryPath(t *testing.T) {
	dir := t.TempDir()
	doc := testDocument(t, "@%#", "+. ")

	for _, name := range []string{"art.txt", "art.png", "art.PNG", "art"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, doc))
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, doc.String(), string(got), name)
	}
}

func TestCheckTerminalFitRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "fit")
	require.NoError(t, err)
	defer f.Close()

	fit := CheckTerminalFit(f, testDocument(t, strings.Repeat("@", 500)))
	assert.False(t, fit.IsTerminal)
	assert.True(t, fit.Fits)
	assert.Equal(t, "not a terminal", fit.String())
}

func TestCheckTerminalFitPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 10, Cols: 20}))

	narrow := CheckTerminalFit(tty, testDocument(t, strings.Repeat("#", 20)))
	assert.True(t, narrow.IsTerminal)
	assert.Equal(t, 20, narrow.Columns)
	assert.True(t, narrow.Fits)
	assert.Equal(t, "terminal, 20 columns", narrow.String())

	wide := CheckTerminalFit(tty, testDocument(t, strings.Repeat("#", 21)))
	assert.False(t, wide.Fits)
}
