// Package config provides YAML configuration parsing for the check-in board.
//
// This package enables running the board as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	title: Intel Sustainability Summit
//	port: 8080
//	goal: 50
//
//	storage:
//	  driver: sqlite
//	  path: ${SUMMIT_DATA_DIR:-.}/checkins.db
//
// Environment variables override the file: SUMMIT_TITLE, SUMMIT_PORT,
// SUMMIT_GOAL, SUMMIT_STORAGE_DRIVER and SUMMIT_STORAGE_PATH.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/jpalmerr/summitcheckin"
)

const (
	defaultPort = 8080
	defaultGoal = 50

	// defaultFilePath is the directory used by the file driver.
	defaultFilePath = "summitcheckin-data"

	// defaultSQLitePath is the database file used by the sqlite driver.
	defaultSQLitePath = "summitcheckin.db"
)

// Config is the root configuration structure for the board.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Title is the dashboard title. Defaults to "Summit Check-In" if not set.
	Title string `yaml:"title" env:"SUMMIT_TITLE"`

	// Port is the HTTP server port. Defaults to 8080.
	Port int `yaml:"port" env:"SUMMIT_PORT"`

	// Goal is the attendance goal. Defaults to 50.
	Goal int `yaml:"goal" env:"SUMMIT_GOAL"`

	// Storage selects where the state is saved.
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig selects the storage driver.
type StorageConfig struct {
	// Driver is "file", "sqlite" or "memory". Defaults to "file".
	Driver string `yaml:"driver" env:"SUMMIT_STORAGE_DRIVER"`

	// Path is the directory for "file" and the database file for "sqlite".
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	Path string `yaml:"path" env:"SUMMIT_STORAGE_PATH"`
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Order of precedence, lowest first: defaults, the YAML document,
// SUMMIT_* environment variables. ${VAR} references in Title and
// Storage.Path are expanded after overrides are applied. An empty document
// is valid and yields the defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// unset variables leave the YAML values in place
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills zero values.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Goal == 0 {
		c.Goal = defaultGoal
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = summitcheckin.DriverFile
	}
	if c.Storage.Path == "" {
		switch c.Storage.Driver {
		case summitcheckin.DriverFile:
			c.Storage.Path = defaultFilePath
		case summitcheckin.DriverSQLite:
			c.Storage.Path = defaultSQLitePath
		}
	}
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	title, err := expandEnvVars(c.Title)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	c.Title = title

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Goal < 1 {
		return fmt.Errorf("goal must be positive, got %d", c.Goal)
	}

	switch c.Storage.Driver {
	case summitcheckin.DriverMemory, summitcheckin.DriverFile, summitcheckin.DriverSQLite:
	default:
		return fmt.Errorf("storage.driver must be %q, %q or %q, got %q",
			summitcheckin.DriverFile, summitcheckin.DriverSQLite, summitcheckin.DriverMemory, c.Storage.Driver)
	}

	path, err := expandEnvVars(c.Storage.Path)
	if err != nil {
		return fmt.Errorf("storage.path: %w", err)
	}
	c.Storage.Path = path

	return nil
}
