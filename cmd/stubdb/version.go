package main

import (
	"fmt"
	"runtime"

	"github.com/chameleon-db/stubdb/pkg/fakedb"
	"github.com/spf13/cobra"
)

// Version is set by build flags
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show stubdb version",
	Long:  "Display the current version of the stubdb CLI and library",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "stubdb v%s\n", Version)

		if verbose {
			fmt.Fprintln(out, "\nComponents:")
			fmt.Fprintf(out, "  CLI:    v%s\n", Version)
			fmt.Fprintf(out, "  Driver: %s (database/sql)\n", fakedb.DriverName)
			fmt.Fprintf(out, "  Go:     %s\n", runtime.Version())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
