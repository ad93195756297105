package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/notepad/internal/search"
)

// execute runs the CLI against a config file in dir and returns stdout and
// stderr.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	cfgPath := filepath.Join(dir, "notepad.toml")
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		require.NoError(t, os.WriteFile(cfgPath, []byte("[logging]\nlevel = \"warn\"\n"), 0o644))
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--no-color", "--config", cfgPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFindStepsThroughMatches(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "doc.txt", "foo bar\nbaz foo\n")

	out, _, err := execute(t, dir, "find", path, "--term", "foo", "--next", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "2 matches")
	assert.Contains(t, out, "match 2/2 at 2:5")
	assert.Contains(t, out, "foo bar")
	assert.Contains(t, out, "baz foo")
}

func TestFindWholeWordFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "notepad.toml", "[search]\nwholeWord = true\n")
	path := writeTemp(t, dir, "doc.txt", "foobar foo\n")

	out, _, err := execute(t, dir, "find", path, "--term", "foo")
	require.NoError(t, err)
	assert.Contains(t, out, "1 matches")
	assert.Contains(t, out, "match 1/1 at 1:8")
}

func TestFindNoMatches(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "doc.txt", "hello\n")

	out, _, err := execute(t, dir, "find", path, "--term", "xyz")
	require.ErrorIs(t, err, search.ErrNoMatches)
	assert.Contains(t, out, "no matches")
	assert.Equal(t, 1, exitCode(err))
}

func TestFindScreenColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "doc.txt", "\tfoo\n")

	out, _, err := execute(t, dir, "find", path, "--term", "foo")
	require.NoError(t, err)
	assert.Contains(t, out, "1:2 (screen 5)")
}

func TestReplaceAllWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "doc.txt", "foo bar foo\n")

	out, _, err := execute(t, dir, "replace", path, "--term", "foo", "--with", "x", "--all", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "replaced 2 occurrences")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x bar x\n", string(data))
}

func TestReplaceNextKeepsLineEndings(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "doc.txt", "foo\r\nfoo\r\n")

	out, errOut, err := execute(t, dir, "replace", path, "--term", "foo", "--with", "bar", "--at", "1")
	require.NoError(t, err)
	assert.Equal(t, "foo\r\nbar\r\n", out)
	assert.Contains(t, errOut, "replaced at 2:1")

	// Without --write the file is untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "foo\r\nfoo\r\n", string(data))
}

func TestReplaceNextNotFound(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "doc.txt", "foo bar\n")

	_, _, err := execute(t, dir, "replace", path, "--term", "foo", "--with", "x", "--at", "2")
	require.ErrorIs(t, err, search.ErrNotFound)
	assert.Equal(t, 1, exitCode(err))
}

func TestMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, dir, "find", filepath.Join(dir, "nope.txt"), "--term", "x")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(errors.New("boom")))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestReplaceDiff(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "doc.txt", "keep\nfoo bar foo\nkeep\n")

	out, _, err := execute(t, dir, "replace", path, "--term", "foo", "--with", "x", "--all", "--diff")
	require.NoError(t, err)
	assert.Contains(t, out, "--- "+path)
	assert.Contains(t, out, "-foo bar foo\n")
	assert.Contains(t, out, "+x bar x\n")
	assert.NotContains(t, out, "-keep")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep\nfoo bar foo\nkeep\n", string(data))
}
