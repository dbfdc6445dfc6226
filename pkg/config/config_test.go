package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies the default values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "png" {
		t.Errorf("Expected default format png, got %s", cfg.Output.Format)
	}
	if cfg.Output.BitDepth != 8 {
		t.Errorf("Expected default bit depth 8, got %d", cfg.Output.BitDepth)
	}
	if cfg.Viewer.Width != 1280 || cfg.Viewer.Height != 720 {
		t.Errorf("Expected default window 1280x720, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

// TestLoadConfigMissingFile verifies that a missing file yields defaults
// rather than an error
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Output.Format != "png" {
		t.Errorf("Expected default config, got format %s", cfg.Output.Format)
	}
}

// TestSaveAndLoadConfig verifies a round trip through the YAML file
func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = "jpeg"
	cfg.Output.BitDepth = 16
	cfg.Viewer.Title = "spectrum"
	cfg.Logging.Verbose = true

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Output.Format != "jpeg" {
		t.Errorf("Expected format jpeg, got %s", loaded.Output.Format)
	}
	if loaded.Output.BitDepth != 16 {
		t.Errorf("Expected bit depth 16, got %d", loaded.Output.BitDepth)
	}
	if loaded.Viewer.Title != "spectrum" {
		t.Errorf("Expected title spectrum, got %s", loaded.Viewer.Title)
	}
	if !loaded.Logging.Verbose {
		t.Error("Expected verbose logging to survive the round trip")
	}
}

// TestLoadConfigRejectsInvalid verifies validation of parsed files
func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "output:\n  format: webp\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for unsupported output format")
	}
}

// TestCreateDefaultConfigFile verifies that the generated file loads back
func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile failed: %v", err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Errorf("Generated config failed to load: %v", err)
	}
}
