package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	noColor    bool
	debugLevel string
	dsnFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "stubdb",
	Short: "Exercise database code without a database",
	Long: `stubdb is a stand-in database: it accepts any DSN and any query,
reports what it would have done, and never opens a connection.

Configuration is read from DATABASE_URL (a .env file is honored),
.stubdb.yml, or the legacy .stubdb TOML file, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&debugLevel, "debug", "", "diagnostic level: off, info or trace")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "data-source name (overrides configuration)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

// loadDotEnv reads .env from the working directory if there is one.
// Variables already set in the environment win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}
