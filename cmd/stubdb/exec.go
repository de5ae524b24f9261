package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chameleon-db/stubdb/pkg/fakedb"
	"github.com/spf13/cobra"
)

var noCommit bool

var execCmd = &cobra.Command{
	Use:   "exec [query...]",
	Short: "Run queries against the fake database",
	Long: `Connect to the configured DSN, execute each query and commit.

Queries are taken from the arguments, or one per line from stdin when no
arguments are given; blank lines are skipped and every other line is
executed verbatim. Nothing is sent anywhere: every step is only reported.

Examples:
  stubdb exec "SELECT 1"
  stubdb exec --dsn postgres://localhost/app --debug trace "UPDATE users SET active = true"
  cat queries.sql | stubdb exec --no-commit`,
	RunE: runExec,
}

func init() {
	execCmd.Flags().BoolVar(&noCommit, "no-commit", false, "skip the final commit")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, source, err := LoadSettings(workDir)
	if err != nil {
		return err
	}

	debug, err := newDebugContext(cfg, out)
	if err != nil {
		return err
	}

	queries := args
	if len(queries) == 0 {
		queries, err = readQueries(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	if verbose {
		printInfo(out, "Using %s", source)
	}

	conn := fakedb.Connect(cfg.Database.DSN, fakedb.WithDebug(debug))
	cur := conn.Cursor()
	for _, q := range queries {
		cur.Execute(q)
	}

	if cfg.Database.AutoCommit && !noCommit {
		conn.Commit()
	}

	if verbose {
		printSuccess(out, "%d statement(s) executed", len(queries))
	}
	return nil
}

// readQueries returns the non-blank lines of r exactly as written
func readQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return queries, nil
}
