package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LegacyFileName is the older TOML config file, read when .stubdb.yml is absent
const LegacyFileName = ".stubdb"

type legacyFile struct {
	Database struct {
		DSN        string `toml:"dsn"`
		AutoCommit *bool  `toml:"auto_commit"`
	} `toml:"database"`
	Debug struct {
		Level string `toml:"level"`
		Color *bool  `toml:"color"`
	} `toml:"debug"`
}

// LoadLegacy reads <workDir>/.stubdb on top of Defaults. ok is false when
// the file does not exist.
func LoadLegacy(workDir string) (cfg *Config, ok bool, err error) {
	path := filepath.Join(workDir, LegacyFileName)
	if _, err := os.Stat(path); err != nil {
		return nil, false, nil
	}

	var file legacyFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", LegacyFileName, err)
	}

	cfg = Defaults()
	if file.Database.DSN != "" {
		cfg.Database.DSN = file.Database.DSN
	}
	if file.Database.AutoCommit != nil {
		cfg.Database.AutoCommit = *file.Database.AutoCommit
	}
	if file.Debug.Level != "" {
		cfg.Debug.Level = file.Debug.Level
	}
	if file.Debug.Color != nil {
		cfg.Debug.Color = *file.Debug.Color
	}

	return cfg, true, nil
}
