package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all frontbundle configuration.
type Config struct {
	Name string `yaml:"name"`

	// File selection and reading
	World WorldConfig `yaml:"world"`

	// Output document
	Report ReportConfig `yaml:"report"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration compiled into the binary.
// It panics if the embedded defaults do not parse; config_test guards that.
func DefaultConfig() *Config {
	cfg, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Parse decodes a YAML document into a Config. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Load returns the built-in configuration with environment overrides applied
// and validated. There is no config file: the bundle layout is fixed at build time.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
// Only logging is overridable; the bundle itself is not.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("FRONTBUNDLE_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := os.Getenv("FRONTBUNDLE_LOG_FORMAT"); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.World.validate(); err != nil {
		return fmt.Errorf("%w: world: %v", ErrInvalidConfig, err)
	}
	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("%w: report: %v", ErrInvalidConfig, err)
	}
	if err := c.Logging.validate(); err != nil {
		return fmt.Errorf("%w: logging: %v", ErrInvalidConfig, err)
	}
	return nil
}
