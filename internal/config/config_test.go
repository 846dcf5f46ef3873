package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input.Dir != "" {
		t.Errorf("Input.Dir = %q, want empty", cfg.Input.Dir)
	}
	if cfg.Output.Dir != "" {
		t.Errorf("Output.Dir = %q, want empty", cfg.Output.Dir)
	}
	if cfg.Render.Mode != "" {
		t.Errorf("Render.Mode = %q, want empty", cfg.Render.Mode)
	}
	if cfg.Render.DPI != 0 {
		t.Errorf("Render.DPI = %d, want 0", cfg.Render.DPI)
	}
	if cfg.Viewer.Preview {
		t.Error("Viewer.Preview = true, want false")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `render:
  mode: "pdfjs"
  dpi: 150
site:
  title: "My Portfolio"
viewer:
  maxZoom: 8.0
  preview: true
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Render.Mode != "pdfjs" {
			t.Errorf("Render.Mode = %q, want %q", cfg.Render.Mode, "pdfjs")
		}
		if cfg.Render.DPI != 150 {
			t.Errorf("Render.DPI = %d, want 150", cfg.Render.DPI)
		}
		if cfg.Site.Title != "My Portfolio" {
			t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "My Portfolio")
		}
		if cfg.Viewer.MaxZoom != 8.0 {
			t.Errorf("Viewer.MaxZoom = %v, want 8.0", cfg.Viewer.MaxZoom)
		}
		if !cfg.Viewer.Preview {
			t.Error("Viewer.Preview = false, want true")
		}
	})

	t.Run("loads input and output directories", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `input:
  dir: "/path/to/pdfs"
output:
  dir: "/path/to/site"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Dir != "/path/to/pdfs" {
			t.Errorf("Input.Dir = %q, want %q", cfg.Input.Dir, "/path/to/pdfs")
		}
		if cfg.Output.Dir != "/path/to/site" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "/path/to/site")
		}
	})

	t.Run("bare name resolved in working directory", func(t *testing.T) {
		dir := t.TempDir()
		oldWD, err := os.Getwd()
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Cleanup(func() { _ = os.Chdir(oldWD) })
		content := `site:
  title: "Resolved By Name"
`
		if err := os.WriteFile(filepath.Join(dir, "prod.yaml"), []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig("prod")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Site.Title != "Resolved By Name" {
			t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "Resolved By Name")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("render:\n  mode: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		content := `render:
  mode: "raster"
unknownField: "should fail"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid mode rejected", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "mode.yaml")
		if err := os.WriteFile(configPath, []byte("render:\n  mode: \"webgl\"\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if err == nil || !strings.Contains(err.Error(), "render.mode") {
			t.Errorf("error = %v, want render.mode validation error", err)
		}
	})

	t.Run("out-of-range DPI rejected", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "dpi.yaml")
		if err := os.WriteFile(configPath, []byte("render:\n  dpi: 5000\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if err == nil || !strings.Contains(err.Error(), "render.dpi") {
			t.Errorf("error = %v, want render.dpi validation error", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("zero config valid", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("overlong title rejected", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Site: SiteConfig{Title: strings.Repeat("x", MaxTitleLength+1)}}
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("out-of-range max zoom rejected", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Viewer: ViewerConfig{MaxZoom: 99}}
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("mode case-insensitive", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Render: RenderConfig{Mode: "Raster"}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}
