// Package config loads and saves urlcat's YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDir     = "urlcat"
	configFile = "config.yml"
)

// ErrInvalid marks a rejected configuration value
var ErrInvalid = errors.New("invalid config")

// Config holds settings for the CLI and the HTTP server. The classifier
// itself takes no configuration.
type Config struct {
	// Output is the default output format: text, json or yaml
	Output string `yaml:"output"`
	// Color controls styled output: auto, always or never
	Color    string       `yaml:"color"`
	LogLevel string       `yaml:"log_level"`
	Server   ServerConfig `yaml:"server"`
}

// ServerConfig configures `urlcat serve`
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MaxBatch caps the number of URLs in one POST /api/classify
	MaxBatch int `yaml:"max_batch"`
}

var (
	outputFormats = []string{"text", "json", "yaml"}
	colorModes    = []string{"auto", "always", "never"}
	logLevels     = []string{"debug", "info", "warn", "error"}
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Output:   "text",
		Color:    "auto",
		LogLevel: "info",
		Server: ServerConfig{
			Addr:     "127.0.0.1:8780",
			MaxBatch: 100,
		},
	}
}

// Validate checks every field against its allowed values
func (c *Config) Validate() error {
	if !oneOf(c.Output, outputFormats) {
		return fmt.Errorf("%w: output %q (want one of %s)", ErrInvalid, c.Output, strings.Join(outputFormats, ", "))
	}
	if !oneOf(c.Color, colorModes) {
		return fmt.Errorf("%w: color %q (want one of %s)", ErrInvalid, c.Color, strings.Join(colorModes, ", "))
	}
	if !oneOf(c.LogLevel, logLevels) {
		return fmt.Errorf("%w: log_level %q (want one of %s)", ErrInvalid, c.LogLevel, strings.Join(logLevels, ", "))
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	if c.Server.MaxBatch < 1 {
		return fmt.Errorf("%w: server.max_batch must be positive", ErrInvalid)
	}
	return nil
}

// Set updates a single field addressed by its YAML key, e.g. "server.addr"
func (c *Config) Set(key, value string) error {
	switch key {
	case "output":
		c.Output = value
	case "color":
		c.Color = value
	case "log_level":
		c.LogLevel = value
	case "server.addr":
		c.Server.Addr = value
	case "server.max_batch":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: server.max_batch %q is not a number", ErrInvalid, value)
		}
		c.Server.MaxBatch = n
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
	}
	return c.Validate()
}

// ConfigDir returns the directory holding the config file
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appDir), nil
}

// SavePath returns the config file path, or "" if it cannot be determined
func SavePath() string {
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configFile)
}

// Exists reports whether a config file is present
func Exists() bool {
	p := SavePath()
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}

// Load reads the config file at path. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, falling back to defaults when it is
// missing or broken
func LoadOrDefault() *Config {
	p := SavePath()
	if p == "" {
		return Default()
	}
	cfg, err := Load(p)
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes cfg to the default location
func Save(cfg *Config) error {
	p := SavePath()
	if p == "" {
		return fmt.Errorf("failed to determine config path")
	}
	return SaveTo(cfg, p)
}

// SaveTo writes cfg to path, creating parent directories
func SaveTo(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
