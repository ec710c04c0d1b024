package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.DefaultMode != "file" {
		t.Errorf("Expected DefaultMode=file, got %s", cfg.Output.DefaultMode)
	}
	if !cfg.Output.ColorOutput {
		t.Error("Expected ColorOutput=true")
	}
	if cfg.Output.HexBytesPerLine != 16 {
		t.Errorf("Expected HexBytesPerLine=16, got %d", cfg.Output.HexBytesPerLine)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected Port=8080, got %d", cfg.API.Port)
	}
	if cfg.Viewer.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.Viewer.HistorySize)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "miniasm" && path != "config.toml" {
			t.Errorf("Expected path in miniasm directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.API.Port = 9999
	cfg.Output.ColorOutput = false
	cfg.Viewer.HistorySize = 500

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.API.Port != 9999 {
		t.Errorf("Expected Port=9999, got %d", loaded.API.Port)
	}
	if loaded.Output.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
	if loaded.Viewer.HistorySize != 500 {
		t.Errorf("Expected HistorySize=500, got %d", loaded.Viewer.HistorySize)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.API.Port != 8080 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[api]
port = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
