package pdf2site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-pdf2site/internal/fileutil"
)

// Previewer captures a social-preview screenshot of the generated site.
type Previewer interface {
	Capture(ctx context.Context, htmlPath, outPath string) error
	Close() error
}

// Compile-time interface check
var _ Previewer = (*rodPreviewer)(nil)

// Preview viewport in CSS pixels (1.91:1, the standard og:image ratio).
const (
	previewWidth  = 1200
	previewHeight = 630
)

// rodPreviewer implements Previewer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodPreviewer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodPreviewer creates a rodPreviewer with the given timeout.
func newRodPreviewer(timeout time.Duration) *rodPreviewer {
	return &rodPreviewer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (p *rodPreviewer) ensureBrowser() error {
	if p.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	p.browser = rod.New().ControlURL(u)
	if err := p.browser.Connect(); err != nil {
		p.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (p *rodPreviewer) Close() error {
	if p.browser != nil {
		err := p.browser.Close()
		p.browser = nil
		return err
	}
	return nil
}

// Capture opens the generated entry document in headless Chrome and writes a
// screenshot of the first page to outPath.
// Returns explicit errors instead of panicking when browser operations fail.
func (p *rodPreviewer) Capture(ctx context.Context, htmlPath, outPath string) error {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.ensureBrowser(); err != nil {
		return err
	}

	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	page, err := p.browser.Page(proto.TargetCreateTarget{URL: "file://" + absPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  previewWidth,
		Height: previewHeight,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	// Wait for page to load with timeout from context or default
	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return err
	}

	shot, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	if err := os.WriteFile(outPath, shot, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrScreenshot, outPath, err)
	}

	return nil
}
