package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInitDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Init()

	if got := viper.GetString("format"); got != "text" {
		t.Errorf("expected format default %q, got %q", "text", got)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Point the search away from any real user config.
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Chdir(%q) failed: %v", tempDir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("Chdir(%q) failed: %v", origDir, err)
		}
	})

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want default %q", cfg.Format, "text")
	}
	if cfg.Author != "" {
		t.Errorf("Author = %q, want empty", cfg.Author)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "author: Acme\nformat: json\nroaming: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	Init()

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Author != "Acme" {
		t.Errorf("Author = %q, want %q", cfg.Author, "Acme")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if !cfg.Roaming {
		t.Error("Roaming = false, want true")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Init()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}
