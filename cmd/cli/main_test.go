package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/seedline/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag --this-is-not-a-valid-flag")
}

func TestRun_Command(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"seed", "fileA", "fileB", "--keep-seeding"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), `seed (command "seed")`)
	require.Contains(t, out.String(), `inputs = ["fileA", "fileB"]`)
	require.Contains(t, out.String(), "keep-seeding = true")
}

func TestRun_HelpCommand(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"help", "info"}))
	require.Contains(t, out.String(), "seedline info <torrent-id>")
}

func TestRun_HelpUnknownCommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"help", "sed"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %T", err)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "unknown command `sed` (did you mean seed?)")
	require.Contains(t, exitErr.Message, "Run 'seedline --help' for usage.")
	require.Empty(t, out.String())
}

func TestRun_LogFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	logFile := filepath.Join(t.TempDir(), "seedline.log")
	args := []string{"version", "--log-level", "debug", "--log-file", logFile}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "seedline dev\n", out.String(), "logs go to the file, not the output")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "command=version")
}
