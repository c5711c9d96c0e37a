package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText_Args(t *testing.T) {
	text, err := readText([]string{"I", "love", "my", "team"})
	require.NoError(t, err)
	assert.Equal(t, "I love my team", text)
}

func TestReadText_Stdin(t *testing.T) {
	orig := stdin
	t.Cleanup(func() { stdin = orig })
	stdin = strings.NewReader("from stdin\n")

	text, err := readText(nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", text)
}

func TestReadLines_SkipsBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	require.NoError(t, os.WriteFile(path, []byte("great team\n\n  \nawful hours\n"), 0o644))

	lines, err := readLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"great team", "awful hours"}, lines)
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := readLines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestParseScores(t *testing.T) {
	current, history, err := parseScores([]string{"0.5", "0.1", "-0.2"})
	require.NoError(t, err)
	assert.Equal(t, 0.5, current)
	assert.Equal(t, []float64{0.1, -0.2}, history)

	current, history, err = parseScores([]string{"0.5", "0.1,-0.2"})
	require.NoError(t, err)
	assert.Equal(t, 0.5, current)
	assert.Equal(t, []float64{0.1, -0.2}, history)

	current, history, err = parseScores([]string{"0.3"})
	require.NoError(t, err)
	assert.Equal(t, 0.3, current)
	assert.Empty(t, history)

	_, _, err = parseScores([]string{","})
	assert.Error(t, err)

	_, _, err = parseScores(nil)
	assert.Error(t, err)

	_, _, err = parseScores([]string{"abc"})
	assert.Error(t, err)
}

func TestPositional(t *testing.T) {
	assert.Equal(t, "file.txt", positional([]string{"--limit", "10", "file.txt"}))
	assert.Equal(t, "file.txt", positional([]string{"file.txt", "--limit", "10"}))
	assert.Equal(t, "-", positional([]string{"--limit", "10"}))
	assert.Equal(t, "-", positional(nil))
}

func TestFlagValue(t *testing.T) {
	assert.Equal(t, "10", flagValue([]string{"--limit", "10"}, "--limit"))
	assert.Equal(t, "", flagValue([]string{"--limit"}, "--limit"))
}

func TestWriteReport(t *testing.T) {
	var b strings.Builder
	require.NoError(t, writeReport(&b, "trend", map[string]int{"n": 1}))

	out := b.String()
	assert.Contains(t, out, `"command": "trend"`)
	assert.Contains(t, out, `"id": "`)
	assert.Contains(t, out, `"n": 1`)
}

func TestRunInfo(t *testing.T) {
	// Info commands never read config, so a broken file cannot fail them.
	broken := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(broken, []byte("log_level = [broken"), 0o644))
	t.Setenv("PULSE_CONFIG", broken)

	var out, errOut strings.Builder
	assert.True(t, runInfo(&out, &errOut, "version"))
	assert.Equal(t, "pulse v"+version+"\n", out.String())

	for _, cmd := range []string{"help", "--help", "-h"} {
		errOut.Reset()
		assert.True(t, runInfo(&out, &errOut, cmd))
		assert.Contains(t, errOut.String(), "Usage:")
	}

	out.Reset()
	errOut.Reset()
	assert.False(t, runInfo(&out, &errOut, "analyze"))
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}
