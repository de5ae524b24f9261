package main

import (
	"fmt"
	"os"

	"github.com/chameleon-db/stubdb/internal/config"
	"github.com/chameleon-db/stubdb/pkg/fakedb"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage local stubdb configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented " + config.FileName + " to the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		loader := config.NewLoader(workDir)
		if loader.Exists() {
			if !forceInit {
				return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
			}
			printWarning(out, "Overwriting %s", config.FileName)
		}

		if err := os.WriteFile(loader.Path(), []byte(config.Template()), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", config.FileName, err)
		}

		printSuccess(out, "Created %s", config.FileName)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg, source, err := LoadSettings(workDir)
		if err != nil {
			return err
		}

		shown := *cfg
		shown.Database.DSN = fakedb.Redact(cfg.Database.DSN)

		data, err := yaml.Marshal(&shown)
		if err != nil {
			return fmt.Errorf("failed to serialize config: %w", err)
		}

		if verbose {
			printInfo(out, "Using %s", source)
		}
		fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
