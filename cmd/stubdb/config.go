package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chameleon-db/stubdb/internal/config"
	"github.com/chameleon-db/stubdb/pkg/fakedb"
)

// LoadSettings resolves the configuration for workDir:
// 1. .stubdb.yml, else the legacy .stubdb file, else defaults
// 2. DATABASE_URL replaces the DSN
// 3. --dsn and --debug flags override both
//
// The returned string names where the DSN came from.
func LoadSettings(workDir string) (*config.Config, string, error) {
	cfg, source, err := loadBaseConfig(workDir)
	if err != nil {
		return nil, "", err
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		cfg.Database.DSN = databaseURL
		source = "DATABASE_URL from environment"
	}

	if dsnFlag != "" {
		cfg.Database.DSN = dsnFlag
		source = "--dsn flag"
	}
	if debugLevel != "" {
		cfg.Debug.Level = debugLevel
	}
	if noColor {
		cfg.Debug.Color = false
	}

	return cfg, source, nil
}

func loadBaseConfig(workDir string) (*config.Config, string, error) {
	loader := config.NewLoader(workDir)
	if loader.Exists() {
		cfg, err := loader.Load()
		if err != nil {
			return nil, "", err
		}
		return cfg, config.FileName + " configuration file", nil
	}

	cfg, ok, err := config.LoadLegacy(workDir)
	if err != nil {
		return nil, "", err
	}
	if ok {
		return cfg, config.LegacyFileName + " configuration file", nil
	}

	return config.Defaults(), "default configuration", nil
}

// newDebugContext builds the notifier sink for cfg writing to w
func newDebugContext(cfg *config.Config, w io.Writer) (*fakedb.DebugContext, error) {
	level, err := fakedb.ParseDebugLevel(cfg.Debug.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid debug level: %w", err)
	}

	return &fakedb.DebugContext{
		Level:       level,
		Writer:      w,
		ColorOutput: cfg.Debug.Color && useColor(w),
	}, nil
}
