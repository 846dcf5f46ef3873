package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-pdf2site/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // PDF2SITE_CONFIG: config file path
	Timeout    time.Duration // PDF2SITE_TIMEOUT: preview capture timeout

	InputDir  string // PDF2SITE_INPUT_DIR: default input directory
	OutputDir string // PDF2SITE_OUTPUT_DIR: default output directory

	Mode      string // PDF2SITE_MODE: raster, pdfjs
	DPI       int    // PDF2SITE_DPI: raster resolution
	Format    string // PDF2SITE_FORMAT: png, jpeg
	Title     string // PDF2SITE_TITLE: site title
	Date      string // PDF2SITE_DATE: site date
	PDFJSBase string // PDF2SITE_PDFJS_BASE: pdf.js build base URL
}

// knownEnvVars lists valid PDF2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PDF2SITE_CONFIG":     true,
	"PDF2SITE_TIMEOUT":    true,
	"PDF2SITE_INPUT_DIR":  true,
	"PDF2SITE_OUTPUT_DIR": true,
	"PDF2SITE_MODE":       true,
	"PDF2SITE_DPI":        true,
	"PDF2SITE_FORMAT":     true,
	"PDF2SITE_TITLE":      true,
	"PDF2SITE_DATE":       true,
	"PDF2SITE_PDFJS_BASE": true,
	"PDF2SITE_CONTAINER":  true, // doctor-only override
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized PDF2SITE_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PDF2SITE_CONFIG"),
		InputDir:   os.Getenv("PDF2SITE_INPUT_DIR"),
		OutputDir:  os.Getenv("PDF2SITE_OUTPUT_DIR"),
		Mode:       os.Getenv("PDF2SITE_MODE"),
		Format:     os.Getenv("PDF2SITE_FORMAT"),
		Title:      os.Getenv("PDF2SITE_TITLE"),
		Date:       os.Getenv("PDF2SITE_DATE"),
		PDFJSBase:  os.Getenv("PDF2SITE_PDFJS_BASE"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("PDF2SITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// Parse int for DPI
	if dpi := os.Getenv("PDF2SITE_DPI"); dpi != "" {
		if n, err := strconv.Atoi(dpi); err == nil && n > 0 {
			cfg.DPI = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized PDF2SITE_* variables.
// Helps catch typos like PDF2SITE_TITEL instead of PDF2SITE_TITLE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PDF2SITE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.Dir == "" {
		cfg.Input.Dir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}

	if env.Mode != "" && cfg.Render.Mode == "" {
		cfg.Render.Mode = env.Mode
	}
	if env.DPI != 0 && cfg.Render.DPI == 0 {
		cfg.Render.DPI = env.DPI
	}
	if env.Format != "" && cfg.Render.Format == "" {
		cfg.Render.Format = env.Format
	}

	if env.Title != "" && cfg.Site.Title == "" {
		cfg.Site.Title = env.Title
	}
	if env.Date != "" && cfg.Site.Date == "" {
		cfg.Site.Date = env.Date
	}

	if env.PDFJSBase != "" && cfg.Viewer.PDFJSBase == "" {
		cfg.Viewer.PDFJSBase = env.PDFJSBase
	}
}
