package pdf2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInputDir  = errors.New("input directory cannot be empty")
	ErrEmptyOutputDir = errors.New("output directory cannot be empty")
	ErrInvalidMode    = errors.New("invalid render mode")
	ErrInvalidDPI     = errors.New("invalid render DPI")
	ErrInvalidFormat  = errors.New("invalid image format")

	// Rasterization errors.
	ErrRasterizerNotFound = errors.New("pdftoppm not found (install poppler-utils)")
	ErrRasterizeFailed    = errors.New("rasterization failed")
	ErrNoPagesRendered    = errors.New("no rendered pages produced")

	// Site emission errors.
	ErrViewerRender = errors.New("viewer template rendering failed")
	ErrAboutRender  = errors.New("about panel rendering failed")

	// Preview screenshot errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrScreenshot     = errors.New("screenshot capture failed")
)
