// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for kinpuzzle configuration.
	DefaultConfigDir = ".kinpuzzle"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultPresetsFile is the default presets file name.
	DefaultPresetsFile = "presets.yaml"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds defaults for generation, output and logging.
type Config struct {
	Generate GenerateConfig `yaml:"generate,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// GenerateConfig holds puzzle generation defaults.
type GenerateConfig struct {
	People     int    `yaml:"people,omitempty"`
	Length     int    `yaml:"length,omitempty"`
	Seating    string `yaml:"seating,omitempty"` // empty picks a layout at random
	Relations  string `yaml:"relations,omitempty"`
	Difficulty string `yaml:"difficulty,omitempty"`
	Dense      bool   `yaml:"dense,omitempty"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	Color  bool   `yaml:"color"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Mode  string `yaml:"mode,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			People:     5,
			Length:     2,
			Relations:  "auto",
			Difficulty: "low",
		},
		Output: OutputConfig{
			Format: "json",
			Color:  true,
		},
		Log: LogConfig{
			Mode:  "development",
			Level: "warn",
		},
	}
}

// Load loads configuration from the .kinpuzzle directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("KINPUZZLE_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if mode := os.Getenv("KINPUZZLE_LOG_MODE"); mode != "" {
		c.Log.Mode = mode
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.Color = false
	}
}

// ConfigDir returns the path to the .kinpuzzle config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// PresetsFilePath returns the path to the presets file.
func PresetsFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultPresetsFile)
}

// SanitizePresetName converts a preset name to a stable lookup key.
func SanitizePresetName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	return strings.Trim(name, "_")
}
