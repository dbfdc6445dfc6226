// Package config provides configuration loading and management for fftviz.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Output parameters for saving spectrum images
	Output struct {
		// Format selects the on-disk image format, "png" or "jpeg"
		Format string `yaml:"format"`

		// BitDepth selects the grayscale precision, 8 or 16 bits per
		// pixel (JPEG output is always 8-bit)
		BitDepth int `yaml:"bitDepth"`

		// JpegQuality controls JPEG encoding quality (1-100)
		JpegQuality int `yaml:"jpegQuality"`
	} `yaml:"output"`

	// Viewer parameters for the desktop window
	Viewer struct {
		// Width and Height are the initial window dimensions in pixels
		Width  int `yaml:"width"`
		Height int `yaml:"height"`

		// Title is the window title
		Title string `yaml:"title"`
	} `yaml:"viewer"`

	// Logging parameters
	Logging struct {
		// Verbose enables debug-level log output
		Verbose bool `yaml:"verbose"`
	} `yaml:"logging"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default output parameters
	cfg.Output.Format = "png"
	cfg.Output.BitDepth = 8
	cfg.Output.JpegQuality = 90

	// Set default viewer parameters, matching the original window size
	cfg.Viewer.Width = 1280
	cfg.Viewer.Height = 720
	cfg.Viewer.Title = "image visualizer"

	// Set default logging parameters
	cfg.Logging.Verbose = false

	return cfg
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "png", "jpeg":
	default:
		return fmt.Errorf("unsupported output format %q (want png or jpeg)", c.Output.Format)
	}
	switch c.Output.BitDepth {
	case 8, 16:
	default:
		return fmt.Errorf("unsupported bit depth %d (want 8 or 16)", c.Output.BitDepth)
	}
	if c.Output.JpegQuality < 1 || c.Output.JpegQuality > 100 {
		return fmt.Errorf("jpeg quality %d out of range 1-100", c.Output.JpegQuality)
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("invalid viewer size %dx%d", c.Viewer.Width, c.Viewer.Height)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
