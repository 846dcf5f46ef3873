// Package config loads and validates pdf2site YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pdf2site/internal/fileutil"
	"github.com/alnah/go-pdf2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength  = 200  // Site title
	MaxDateLength   = 30   // "2025-12-31" or "December 31, 2025"
	MaxPathLength   = 4096 // Filesystem paths
	MaxURLLength    = 2048 // Browser limit
	MaxModeLength   = 10   // "raster", "pdfjs"
	MaxFormatLength = 10   // "png", "jpeg"
)

// Render DPI bounds, duplicated from the library to keep this package
// importable without a cycle.
const (
	minDPI = 72
	maxDPI = 1200
)

// Config holds all configuration for site generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Site   SiteConfig   `yaml:"site"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Dir string `yaml:"dir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (default: "dist")
}

// RenderConfig defines page rendering options.
type RenderConfig struct {
	Mode   string `yaml:"mode"`   // "raster" (default) or "pdfjs"
	DPI    int    `yaml:"dpi"`    // Raster resolution, 72-1200 (default: 300)
	Format string `yaml:"format"` // "png" (default) or "jpeg"
}

// SiteConfig defines entry-document metadata.
type SiteConfig struct {
	Title string `yaml:"title"` // Page title (empty = first document title)
	Date  string `yaml:"date"`  // "auto", "auto:FORMAT", or literal (empty = omitted)
	About string `yaml:"about"` // Markdown file for the info panel (empty = auto-detect about.md)
}

// ViewerConfig defines client-side viewer behavior.
type ViewerConfig struct {
	MaxZoom   float64 `yaml:"maxZoom"`   // Upper zoom bound (default: 5.0)
	PDFJSBase string  `yaml:"pdfjsBase"` // pdf.js build base URL or local directory
	Preview   bool    `yaml:"preview"`   // Capture preview.png after the build
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.dir", c.Input.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("render.mode", c.Render.Mode, MaxModeLength); err != nil {
		return err
	}
	if c.Render.Mode != "" {
		switch strings.ToLower(c.Render.Mode) {
		case "raster", "pdfjs":
			// valid
		default:
			return fmt.Errorf("render.mode: invalid value %q (must be raster or pdfjs)", c.Render.Mode)
		}
	}
	if c.Render.DPI != 0 && (c.Render.DPI < minDPI || c.Render.DPI > maxDPI) {
		return fmt.Errorf("render.dpi: must be between %d and %d, got %d", minDPI, maxDPI, c.Render.DPI)
	}
	if err := validateFieldLength("render.format", c.Render.Format, MaxFormatLength); err != nil {
		return err
	}
	if c.Render.Format != "" {
		switch strings.ToLower(c.Render.Format) {
		case "png", "jpeg":
			// valid
		default:
			return fmt.Errorf("render.format: invalid value %q (must be png or jpeg)", c.Render.Format)
		}
	}

	if err := validateFieldLength("site.title", c.Site.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.date", c.Site.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.about", c.Site.About, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("viewer.pdfjsBase", c.Viewer.PDFJSBase, MaxURLLength); err != nil {
		return err
	}
	if c.Viewer.MaxZoom != 0 && (c.Viewer.MaxZoom < 1 || c.Viewer.MaxZoom > 16) {
		return fmt.Errorf("viewer.maxZoom: must be between 1 and 16, got %.1f", c.Viewer.MaxZoom)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration. Zero values defer to the
// library defaults (raster mode, 300 DPI, png) and to the CLI's output
// fallback, so env vars and flags layer on top cleanly.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pdf2site/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-pdf2site", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
