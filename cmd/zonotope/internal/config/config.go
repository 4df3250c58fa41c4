// Package config loads the zonotope CLI configuration.
//
// The file lives under os.UserConfigDir():
//
//	~/Library/Application Support/zonotope/config.yaml   (macOS)
//	~/.config/zonotope/config.yaml                       (Linux)
//	%AppData%/zonotope/config.yaml                       (Windows)
//
// Example:
//
//	workers: 4
//	cache_dir: /var/cache/zonotope
//	no_cache: false
//	output: table
//	log_level: info
//
// Every field is optional; command line flags override the file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"
)

const (
	// appDir is the directory name under os.UserConfigDir() and
	// os.UserCacheDir().
	appDir = "zonotope"

	// fileName is the configuration file inside appDir.
	fileName = "config.yaml"
)

// Output formats accepted by the `output` field and the --output flag.
var Formats = []string{"table", "yaml", "json"}

// Config is the decoded configuration file.
type Config struct {
	// Workers is the goroutine count for enumerations (<= 1: sequential).
	Workers int `yaml:"workers,omitempty"`

	// CacheDir is the Badger directory of the result cache.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// NoCache disables the result cache.
	NoCache bool `yaml:"no_cache,omitempty"`

	// Output is one of Formats.
	Output string `yaml:"output,omitempty"`

	// LogLevel is a slog level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level,omitempty"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{Workers: 1, Output: "table", LogLevel: "info"}
	if base, err := os.UserCacheDir(); err == nil {
		cfg.CacheDir = filepath.Join(base, appDir)
	}

	return cfg
}

// DefaultPath returns the location of the configuration file.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}

	return filepath.Join(base, appDir, fileName), nil
}

// Load loads the configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(path)
}

// LoadFrom reads the configuration at path over the defaults. A missing
// file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Path = path
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if !slices.Contains(Formats, c.Output) {
		return fmt.Errorf("output must be one of %v, got %q", Formats, c.Output)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}

	return l, nil
}
