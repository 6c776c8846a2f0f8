// Package yaml loads knowlix configuration from YAML files.
package yaml

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds global configuration.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path"`

	// OutputDir is where generated docs are written.
	OutputDir string `yaml:"output_dir"`

	// Model is the generation model name.
	Model string `yaml:"model"`

	// Concurrency limits simultaneous generation requests.
	Concurrency int `yaml:"concurrency"`

	// RequestsPerSecond throttles generation requests.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// TimeoutSeconds bounds a single generation request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DBPath:            filepath.Join(home, ".knowlix", "knowlix.db"),
		OutputDir:         "docs/generated",
		Model:             "gemini-2.5-flash",
		Concurrency:       4,
		RequestsPerSecond: 1,
		TimeoutSeconds:    120,
	}
}

// LoadConfig loads config from a file, falling back to defaults when the
// file does not exist. Fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".knowlix.yaml"
	}
	return filepath.Join(home, ".knowlix", "config.yaml")
}
