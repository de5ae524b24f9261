package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the work dir
const FileName = ".stubdb.yml"

// Config is the content of .stubdb.yml
type Config struct {
	Version  string         `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Debug    DebugConfig    `yaml:"debug"`
}

// DatabaseConfig describes the connection handed to the fake database
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	// AutoCommit commits after a batch of statements
	AutoCommit bool `yaml:"auto_commit"`
}

// DebugConfig controls diagnostic output
type DebugConfig struct {
	Level string `yaml:"level"`
	Color bool   `yaml:"color"`
}

// Loader reads and writes the config file of one work dir
type Loader struct {
	workDir  string
	filePath string
}

// NewLoader creates a loader for workDir
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:  workDir,
		filePath: filepath.Join(workDir, FileName),
	}
}

// Path returns the config file location
func (l *Loader) Path() string {
	return l.filePath
}

// Exists reports whether the config file is present
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.filePath)
	return err == nil
}

// Load reads the config file, expanding ${VAR} references first
func (l *Loader) Load() (*Config, error) {
	content, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", l.filePath)
		}
		return nil, fmt.Errorf("failed to read %s: %w", l.filePath, err)
	}

	expanded := os.ExpandEnv(string(content))

	cfg := Defaults()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.filePath, err)
	}

	return cfg, nil
}

// LoadOrDefault returns defaults when the file does not exist
func (l *Loader) LoadOrDefault() (*Config, error) {
	if !l.Exists() {
		return Defaults(), nil
	}
	return l.Load()
}

// Save writes cfg to the config file
func (l *Loader) Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(l.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", l.filePath, err)
	}
	return nil
}

// Defaults returns the configuration used when no file exists
func Defaults() *Config {
	return &Config{
		Version: "0.1.0",
		Database: DatabaseConfig{
			Driver:     "stubdb",
			DSN:        "postgresql://localhost:5432/stubdb",
			AutoCommit: true,
		},
		Debug: DebugConfig{
			Level: "info",
			Color: true,
		},
	}
}

// Template returns a commented config file for `stubdb config init`
func Template() string {
	return `# stubdb Configuration
version: "0.1.0"

database:
  # Only used for diagnostics; no connection is ever opened.
  driver: "stubdb"
  dsn: "${DATABASE_URL}"
  auto_commit: true

debug:
  # off | info | trace
  level: "info"
  color: true
`
}
