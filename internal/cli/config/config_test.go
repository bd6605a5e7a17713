package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFrom(tmpDir)
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg.Output.Format != "table" {
		t.Errorf("expected default format 'table', got %s", cfg.Output.Format)
	}
	if cfg.Output.NoColor {
		t.Error("expected color to be enabled by default")
	}
	if cfg.Log.Verbose {
		t.Error("expected verbose logging to be disabled by default")
	}
	if cfg.File != "" {
		t.Errorf("expected no config file, got %s", cfg.File)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
output:
  format: JSON
  no_color: true
log:
  verbose: true
`
	if err := os.WriteFile(filepath.Join(tmpDir, "annotate.yml"), []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(tmpDir)
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("expected format 'json', got %s", cfg.Output.Format)
	}
	if !cfg.Output.NoColor {
		t.Error("expected no_color to be true")
	}
	if !cfg.Log.Verbose {
		t.Error("expected verbose to be true")
	}
	if filepath.Base(cfg.File) != "annotate.yml" {
		t.Errorf("expected File to name annotate.yml, got %q", cfg.File)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("ANNOTATE_OUTPUT_FORMAT", "yaml")

	cfg, err := LoadFrom(tmpDir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Output.Format != "yaml" {
		t.Errorf("expected format 'yaml' from environment, got %s", cfg.Output.Format)
	}
}

func TestLoadInvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, "annotate.yaml"), []byte("output:\n  format: xml\n"), 0644)

	if _, err := LoadFrom(tmpDir); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, "annotate.yml"), []byte("output: [unclosed"), 0644)

	if _, err := LoadFrom(tmpDir); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestLoadUsesWorkingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.WriteFile("annotate.yml", []byte("output:\n  format: dump\n"), 0644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Output.Format != "dump" {
		t.Errorf("expected format 'dump', got %s", cfg.Output.Format)
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"table", "JSON", "yaml", "dump"} {
		if !ValidFormat(f) {
			t.Errorf("expected %s to be valid", f)
		}
	}
	if ValidFormat("xml") {
		t.Error("expected xml to be invalid")
	}
}
