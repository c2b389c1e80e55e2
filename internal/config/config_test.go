package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Output.Extension != ".html" {
		t.Errorf("Output.Extension = %q, want .html", cfg.Output.Extension)
	}
	if !cfg.Engine.LinkEmails {
		t.Error("Engine.LinkEmails = false, want true by default")
	}
	if cfg.Engine.HTMLOutput || cfg.Engine.StrictBoldItalic || cfg.Engine.AutoNewlines ||
		cfg.Engine.AutoHyperlink || cfg.Engine.EncodeProblemURLChars {
		t.Error("non-default engine option enabled in DefaultConfig")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
output:
  defaultDir: /tmp/out
  extension: .htm
engine:
  htmlOutput: true
  strictBoldItalic: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Output.DefaultDir != "/tmp/out" {
		t.Errorf("Output.DefaultDir = %q, want /tmp/out", cfg.Output.DefaultDir)
	}
	if cfg.Output.Extension != ".htm" {
		t.Errorf("Output.Extension = %q, want .htm", cfg.Output.Extension)
	}
	if !cfg.Engine.HTMLOutput {
		t.Error("Engine.HTMLOutput = false, want true")
	}
	if !cfg.Engine.StrictBoldItalic {
		t.Error("Engine.StrictBoldItalic = false, want true")
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  autoNewlines: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Engine.AutoNewlines {
		t.Error("Engine.AutoNewlines = false, want true from file")
	}
	if cfg.Output.Extension != ".html" {
		t.Errorf("Output.Extension = %q, want the .html default", cfg.Output.Extension)
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("bogus: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("engine: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestValidateExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Extension = "html"
	if err := cfg.Validate(); !errors.Is(err, ErrBadExtension) {
		t.Errorf("Validate() = %v, want ErrBadExtension", err)
	}

	cfg.Output.Extension = ".xhtml"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v for a valid extension", err)
	}
}

func TestIsFilePath(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"./conf.yaml", true},
		{"conf.yaml", true},
		{"conf.yml", true},
		{filepath.Join("sub", "dir"), true},
	}

	for _, tt := range tests {
		if got := isFilePath(tt.input); got != tt.want {
			t.Errorf("isFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveConfigPathReportsTriedLocations(t *testing.T) {
	_, err := resolveConfigPath("definitely-not-a-config")
	if err == nil {
		t.Fatal("expected error for unknown config name")
	}
	if !strings.Contains(err.Error(), "definitely-not-a-config.yaml") {
		t.Errorf("error does not list tried paths: %v", err)
	}
}
