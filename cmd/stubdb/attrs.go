package main

import (
	"fmt"

	"github.com/chameleon-db/stubdb/pkg/mockattr"
	"github.com/spf13/cobra"
)

var flatAttrs bool

var attrsCmd = &cobra.Command{
	Use:   "attrs [name...]",
	Short: "Show which member names belong to mocking libraries",
	Long: `Without arguments, print the member names every mock is assumed to
carry, grouped by mock family.

With arguments, print only the names that are not provided by a mocking
library, i.e. the ones a test author added.

Examples:
  stubdb attrs
  stubdb attrs --flat
  stubdb attrs On Calls FetchUser method_calls`,
	RunE: runAttrs,
}

func init() {
	attrsCmd.Flags().BoolVar(&flatAttrs, "flat", false, "print the baseline as a single sorted list")
	rootCmd.AddCommand(attrsCmd)
}

// nameList lets plain names be inspected like a mock that lists itself
type nameList []string

func (n nameList) MockAttributes() []string { return n }

func runAttrs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, name := range mockattr.NonMockAttributes(nameList(args)) {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	if flatAttrs {
		for _, name := range mockattr.BaselineNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	for _, a := range mockattr.Archetypes() {
		fmt.Fprintf(out, "%s (%d):\n", a.Name, len(a.Members))
		for _, m := range a.Members {
			fmt.Fprintf(out, "  %s\n", m)
		}
	}
	return nil
}
