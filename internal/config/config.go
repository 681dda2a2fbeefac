// Package config holds codebreaker configuration loaded from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all codebreaker configuration.
type Config struct {
	// Alphabet is the ordered symbol set secrets are drawn from.
	Alphabet string `yaml:"alphabet"`

	// MaxLength bounds the secret length; length detection aborts past it.
	MaxLength int `yaml:"max_length"`

	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration, matching the reference
// harness instance.
func DefaultConfig() *Config {
	return &Config{
		Alphabet:  "BACXIU",
		MaxLength: 18,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CODEBREAKER_ALPHABET"); v != "" {
		c.Alphabet = v
	}
	if v := os.Getenv("CODEBREAKER_MAX_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxLength = n
		}
	}
	if v := os.Getenv("CODEBREAKER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Alphabet == "" {
		return fmt.Errorf("alphabet must not be empty")
	}
	seen := make(map[byte]bool, len(c.Alphabet))
	for i := 0; i < len(c.Alphabet); i++ {
		if seen[c.Alphabet[i]] {
			return fmt.Errorf("alphabet contains duplicate symbol %q", c.Alphabet[i])
		}
		seen[c.Alphabet[i]] = true
	}
	if c.MaxLength < 1 {
		return fmt.Errorf("max_length must be at least 1, got %d", c.MaxLength)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}
