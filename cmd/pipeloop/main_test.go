package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioA = `.....
.S-7.
.|.|.
.L-J.
.....
`

// writeMaze stores content in a temp file and returns its path.
func writeMaze(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

// runArgs calls run with an env file that does not exist, so the ambient
// .env of the working directory never leaks into a test.
func runArgs(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("PIPELOOP_LOG_LEVEL", "")
	t.Setenv("PIPELOOP_LOG_FORMAT", "")
	var out, errOut bytes.Buffer
	args = append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...)
	err = run(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %T: %v", err, err)
	return exitErr.Code
}

func TestRun_PrintsBothAnswers(t *testing.T) {
	out, _, err := runArgs(t, writeMaze(t, scenarioA))
	require.NoError(t, err)
	assert.Equal(t, "4\n1\n", out)
}

func TestRun_Render(t *testing.T) {
	out, _, err := runArgs(t, "render", writeMaze(t, scenarioA))
	require.NoError(t, err)
	assert.Equal(t, "OOOOO\nOS-7O\nO|I|O\nOL-JO\nOOOOO\n", out)
}

func TestRun_Help(t *testing.T) {
	out, _, err := runArgs(t, "-h")
	require.NoError(t, err, "help must not be an error")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "render")
}

// TestRun_Failures checks failures produce no stdout and the right exit code.
func TestRun_Failures(t *testing.T) {
	cases := []struct {
		name string
		args func(t *testing.T) []string
		code int
	}{
		{"NoArgs", func(*testing.T) []string { return nil }, exitUsage},
		{"TwoArgs", func(*testing.T) []string { return []string{"a", "b"} }, exitUsage},
		{"UnknownFlag", func(*testing.T) []string { return []string{"--nope", "a"} }, exitUsage},
		{"BadLogLevel", func(t *testing.T) []string {
			return []string{"--log-level", "loud", writeMaze(t, scenarioA)}
		}, exitUsage},
		{"MissingFile", func(t *testing.T) []string {
			return []string{filepath.Join(t.TempDir(), "absent.txt")}
		}, exitFailure},
		{"ParseError", func(t *testing.T) []string {
			return []string{writeMaze(t, "S-7\n|?|\nL-J\n")}
		}, exitFailure},
		{"TopologyError", func(t *testing.T) []string {
			return []string{writeMaze(t, "...\n.S.\n...\n")}
		}, exitFailure},
		{"RenderTopologyError", func(t *testing.T) []string {
			return []string{"render", writeMaze(t, "S-\n|.\n..\n")}
		}, exitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runArgs(t, tc.args(t)...)
			require.Error(t, err)
			assert.Equal(t, tc.code, exitCode(t, err))
			assert.Empty(t, out, "no partial output on failure")
		})
	}
}

func TestRun_ErrorMessageNamesCause(t *testing.T) {
	path := writeMaze(t, "S-7\n|?|\nL-J\n")
	_, _, err := runArgs(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 2, column 2")
	assert.Contains(t, err.Error(), "unknown glyph")
}

func TestRun_DebugLogging(t *testing.T) {
	_, logs, err := runArgs(t, "--log-level", "debug", "--log-format", "json", writeMaze(t, scenarioA))
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"loop traced"`)
	assert.Contains(t, logs, `"enclosed":1`)
}

func TestRun_EnvFileSettings(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "pipeloop.env")
	require.NoError(t, os.WriteFile(envPath, []byte("PIPELOOP_LOG_LEVEL=info\n"), 0o600))
	t.Setenv("PIPELOOP_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("PIPELOOP_LOG_LEVEL"))

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"--env-file", envPath, writeMaze(t, scenarioA)})
	require.NoError(t, err)
	assert.Equal(t, "4\n1\n", out.String())
	assert.Contains(t, errOut.String(), "msg=solved")
}
