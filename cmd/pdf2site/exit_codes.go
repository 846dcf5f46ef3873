package main

import (
	"errors"
	"os"

	pdf2site "github.com/alnah/go-pdf2site"
	"github.com/alnah/go-pdf2site/internal/config"
	"github.com/alnah/go-pdf2site/internal/dateutil"
)

// Exit codes for pdf2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitTool    = 4 // External tool errors (pdftoppm, browser)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool errors (exit 4)
	if errors.Is(err, pdf2site.ErrRasterizerNotFound) ||
		errors.Is(err, pdf2site.ErrRasterizeFailed) ||
		errors.Is(err, pdf2site.ErrBrowserConnect) ||
		errors.Is(err, pdf2site.ErrPageCreate) ||
		errors.Is(err, pdf2site.ErrPageLoad) ||
		errors.Is(err, pdf2site.ErrScreenshot) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, pdf2site.ErrEmptyInputDir) ||
		errors.Is(err, pdf2site.ErrEmptyOutputDir) ||
		errors.Is(err, pdf2site.ErrInvalidMode) ||
		errors.Is(err, pdf2site.ErrInvalidDPI) ||
		errors.Is(err, pdf2site.ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
