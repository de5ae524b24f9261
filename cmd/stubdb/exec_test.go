package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecCommandArgs(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "", "exec", "--dsn", "postgres://localhost/app", "SELECT 1", "SELECT 2")
	require.NoError(t, err)

	expected := "[stubdb] Connected to real database\n" +
		"[stubdb] Executed query=SELECT 1\n" +
		"[stubdb] Executed query=SELECT 2\n" +
		"[stubdb] Saved changes\n"
	assert.Equal(t, expected, out)
}

func TestExecCommandStdin(t *testing.T) {
	stdin := "INSERT INTO t VALUES (1)\n\n   \n  DELETE FROM t\t\n"

	out, err := executeCommand(t, t.TempDir(), stdin, "exec")
	require.NoError(t, err)

	assert.Contains(t, out, "Executed query=INSERT INTO t VALUES (1)\n")
	assert.Contains(t, out, "Executed query=  DELETE FROM t\t\n")
	assert.Equal(t, 2, strings.Count(out, "Executed query="))
}

func TestExecCommandNoCommit(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "", "exec", "--no-commit", "SELECT 1")
	require.NoError(t, err)

	assert.NotContains(t, out, "Saved changes")
}

func TestExecCommandDebugOff(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "", "exec", "--debug", "off", "SELECT 1")
	require.NoError(t, err)

	assert.Empty(t, out)
}

func TestExecCommandInvalidDebugLevel(t *testing.T) {
	_, err := executeCommand(t, t.TempDir(), "", "exec", "--debug", "loud", "SELECT 1")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "invalid debug level")
}

func TestExecCommandUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".stubdb.yml", `database:
  dsn: "sqlite://app.db"
  auto_commit: false
debug:
  level: trace
`)

	out, err := executeCommand(t, dir, "", "exec", "SELECT 1")
	require.NoError(t, err)

	assert.Contains(t, out, "kind=sqlite")
	assert.Contains(t, out, "cursor=")
	assert.NotContains(t, out, "Saved changes")
}

func TestExecCommandEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".stubdb.yml", `database:
  dsn: "sqlite://app.db"
`)

	verboseOut, err := executeCommand(t, dir, "", "exec", "--debug", "trace", "--verbose", "SELECT 1")
	require.NoError(t, err)
	assert.Contains(t, verboseOut, "Using .stubdb.yml configuration file")

	t.Setenv("DATABASE_URL", "postgres://bob:hunter2@db:5432/orders")
	rootCmd.SetArgs([]string{"exec", "--debug", "trace", "SELECT 1"})
	var buf strings.Builder
	rootCmd.SetOut(&buf)
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "kind=postgresql")
	assert.Contains(t, out, "target=bob@db:5432/orders")
	assert.NotContains(t, out, "hunter2")
}

func TestExecCommandVerbose(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "", "exec", "--verbose", "SELECT 1")
	require.NoError(t, err)

	assert.Contains(t, out, "Using default configuration")
	assert.Contains(t, out, "1 statement(s) executed")
}

func TestReadQueries(t *testing.T) {
	queries, err := readQueries(strings.NewReader(" a \n\n \t \nb\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{" a ", "b"}, queries)
}
