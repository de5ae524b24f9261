package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCommand runs the root command in dir with fresh flag values
func executeCommand(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()

	verbose = false
	noColor = true
	debugLevel = ""
	dsnFlag = ""
	noCommit = false
	flatAttrs = false
	forceInit = false

	chdir(t, dir)
	t.Setenv("DATABASE_URL", "")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "DATABASE_URL=postgres://dotenv/app\n")
	chdir(t, dir)

	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := os.Getenv("DATABASE_URL"); got != "postgres://dotenv/app" {
		t.Errorf("Expected DATABASE_URL from .env, got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	if err := loadDotEnv(); err != nil {
		t.Errorf("Expected missing .env to be ignored, got: %v", err)
	}
}

func TestLoadDotEnvKeepsExistingValue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "DATABASE_URL=postgres://dotenv/app\n")
	chdir(t, dir)
	t.Setenv("DATABASE_URL", "postgres://shell/app")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := os.Getenv("DATABASE_URL"); got != "postgres://shell/app" {
		t.Errorf("Expected shell value to win, got %q", got)
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}
