package pdf2site

import (
	"fmt"
	"strings"
)

// Render mode constants.
const (
	// ModeRaster pre-renders every page to a PNG at build time.
	ModeRaster = "raster"
	// ModePDFJS copies the source PDFs and renders them client-side.
	ModePDFJS = "pdfjs"
)

// DPI bounds for raster mode.
const (
	MinDPI     = 72
	MaxDPI     = 1200
	DefaultDPI = 300
)

// Image format constants for raster mode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// Zoom bounds for the generated viewer.
const (
	MinZoomFactor     = 1.0
	MaxZoomFactor     = 16.0
	DefaultMaxZoom    = 5.0
	DefaultPDFJSBase  = "https://cdn.jsdelivr.net/npm/pdfjs-dist@4.10.38/build"
	DefaultLoadMillis = 30000
)

// Input contains build parameters.
type Input struct {
	InputDir  string          // Directory of source PDFs (required)
	OutputDir string          // Output directory, wiped per build (required)
	Mode      string          // "raster" or "pdfjs" (default: "raster")
	DPI       int             // Raster resolution (default: 300)
	Format    string          // "png" or "jpeg" (default: "png")
	Site      *SiteSettings   // Site metadata (optional, nil = defaults)
	Viewer    *ViewerSettings // Viewer behavior (optional, nil = defaults)
}

// SiteSettings holds site-level metadata for the entry document.
type SiteSettings struct {
	Title string // Page title ("" = first document title)
	Date  string // Build date shown in the page metadata ("" = omitted)
	About string // Path to a markdown file rendered into the info panel ("" = auto-detect about.md)
}

// ViewerSettings holds client-side viewer behavior.
type ViewerSettings struct {
	MaxZoom   float64 // Upper zoom bound (default: 5.0)
	PDFJSBase string  // Base URL of the pdf.js build (pdfjs mode)
	Preview   bool    // Capture a preview.png of the built site
}

// Validate checks that input fields are present and within bounds.
func (in *Input) Validate() error {
	if in.InputDir == "" {
		return ErrEmptyInputDir
	}
	if in.OutputDir == "" {
		return ErrEmptyOutputDir
	}
	if !isValidMode(in.Mode) {
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidMode, in.Mode, ModeRaster, ModePDFJS)
	}
	if in.DPI != 0 && (in.DPI < MinDPI || in.DPI > MaxDPI) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidDPI, in.DPI, MinDPI, MaxDPI)
	}
	if !isValidFormat(in.Format) {
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidFormat, in.Format, FormatPNG, FormatJPEG)
	}
	if err := in.Viewer.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks viewer settings bounds.
// Returns nil if v is nil (nil means use defaults).
func (v *ViewerSettings) Validate() error {
	if v == nil {
		return nil
	}
	if v.MaxZoom != 0 && (v.MaxZoom < MinZoomFactor || v.MaxZoom > MaxZoomFactor) {
		return fmt.Errorf("invalid max zoom: %.1f (must be between %.1f and %.1f)",
			v.MaxZoom, MinZoomFactor, MaxZoomFactor)
	}
	return nil
}

// isValidMode checks if mode is a known render mode (case-insensitive).
// Empty means default.
func isValidMode(mode string) bool {
	switch strings.ToLower(mode) {
	case "", ModeRaster, ModePDFJS:
		return true
	}
	return false
}

// isValidFormat checks if format is a known image format (case-insensitive).
// Empty means default.
func isValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "", FormatPNG, FormatJPEG:
		return true
	}
	return false
}

// Document describes one processed source PDF.
type Document struct {
	Title       string // Filename stem, as found on disk
	Slug        string // Deterministic filesystem/URL-safe identifier
	SourcePath  string // Absolute or input-relative path of the source PDF
	Pages       int    // Observed page count (rasterizer output, or oracle in pdfjs mode)
	OraclePages int    // Independent reader's count (0 if the oracle failed)
}

// Page is one viewable page in the generated site.
type Page struct {
	Doc   int    // Index into BuildResult.Documents
	Index int    // Zero-based ordinal within the document
	URL   string // Relative artifact URL (image, or the copied PDF)
}

// BuildResult holds the outcome of a build.
type BuildResult struct {
	Documents  []Document
	Pages      []Page // Flattened across documents, in reading order
	TotalPages int
	EntryPath  string // Path of the generated index.html
	Preview    string // Path of preview.png ("" if not captured)
}
