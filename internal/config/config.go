package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"srgmap/internal/table"
)

// DevModeEnv is the environment variable that overrides Config.DevMode.
const DevModeEnv = "SRGMAP_DEV_MODE"

// Config holds the settings of a resolver instance.
type Config struct {
	Version string `yaml:"version"`
	// MappingsDir is the directory holding the tables.
	MappingsDir string `yaml:"mappings_dir"`
	// DevMode selects developer-name resolution.
	DevMode bool `yaml:"dev_mode"`
	// Resources names the tables inside MappingsDir.
	Resources table.Resources `yaml:"resources"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	cfg := Config{}
	applyDefaults(&cfg)

	return cfg
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.MappingsDir == "" {
		cfg.MappingsDir = "."
	}

	defaults := table.DefaultResources()
	if cfg.Resources.Classes == "" {
		cfg.Resources.Classes = defaults.Classes
	}

	if cfg.Resources.Fields == "" {
		cfg.Resources.Fields = defaults.Fields
	}

	if cfg.Resources.Methods == "" {
		cfg.Resources.Methods = defaults.Methods
	}
}

// ApplyEnv overrides settings from the process environment.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	v, ok := lookup(DevModeEnv)
	if !ok || v == "" {
		return nil
	}

	dev, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", DevModeEnv, v, err)
	}

	c.DevMode = dev

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
