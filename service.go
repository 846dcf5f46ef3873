package pdf2site

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-pdf2site/internal/assets"
	"github.com/alnah/go-pdf2site/internal/fileutil"
	"github.com/alnah/go-pdf2site/internal/pipeline"
)

// Output tree layout, relative to the output directory.
const (
	entryDocumentName = "index.html"
	imageSubdir       = "img"
	pdfSubdir         = "pdf"
	previewImageName  = "preview.png"
	defaultAboutFile  = "about.md"
)

// defaultTimeout bounds the preview screenshot (page load included).
const defaultTimeout = 1 * time.Minute

// serviceConfig holds construction-time settings.
type serviceConfig struct {
	timeout time.Duration
	loader  assets.AssetLoader
	logW    io.Writer
}

// Option customizes Service construction.
type Option func(*Service)

// WithTimeout sets the preview screenshot timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.cfg.timeout = d }
}

// WithAssetLoader overrides the embedded viewer assets.
func WithAssetLoader(loader assets.AssetLoader) Option {
	return func(s *Service) { s.cfg.loader = loader }
}

// WithLogWriter directs progress and warning lines (default: os.Stderr).
func WithLogWriter(w io.Writer) Option {
	return func(s *Service) { s.cfg.logW = w }
}

// WithRasterizer injects a rasterization backend (e.g., a fake in tests).
func WithRasterizer(r Rasterizer) Option {
	return func(s *Service) { s.rasterizer = r }
}

// WithPageCounter injects a page-count oracle.
func WithPageCounter(c PageCounter) Option {
	return func(s *Service) { s.counter = c }
}

// WithPreviewer injects a preview screenshot backend.
func WithPreviewer(p Previewer) Option {
	return func(s *Service) { s.previewer = p }
}

// Service orchestrates the PDF-to-site build.
type Service struct {
	cfg        serviceConfig
	rasterizer Rasterizer
	counter    PageCounter
	markdown   pipeline.MarkdownConverter
	builder    *pipeline.ViewerBuilder
	previewer  Previewer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			loader:  assets.NewEmbeddedLoader(),
			logW:    os.Stderr,
		},
		markdown: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rasterizer == nil {
		s.rasterizer = NewPdftoppmRasterizer()
	}
	if s.counter == nil {
		s.counter = NewPdfcpuCounter()
	}
	if s.previewer == nil {
		s.previewer = newRodPreviewer(s.cfg.timeout)
	}
	s.builder = pipeline.NewViewerBuilder(s.cfg.loader)

	return s
}

// Build runs the full pipeline: discovery, rendering, and site emission.
// The output directory is wiped and fully regenerated; nothing persists
// between runs. Source files are processed sequentially in sorted order.
func (s *Service) Build(ctx context.Context, input Input) (*BuildResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	applyDefaults(&input)

	sources, err := discoverPDFs(input.InputDir)
	if err != nil {
		return nil, err
	}

	if err := fileutil.EnsureEmptyDir(input.OutputDir); err != nil {
		return nil, err
	}

	result := &BuildResult{
		EntryPath: filepath.Join(input.OutputDir, entryDocumentName),
	}

	var pageURLs []string         // raster mode: flattened image URLs
	var pdfDocs []pipeline.PDFDoc // pdfjs mode: one copied PDF per entry

	for _, src := range sources {
		doc, urls, err := s.processDocument(ctx, src, input)
		if err != nil {
			return nil, err
		}
		docIndex := len(result.Documents)
		result.Documents = append(result.Documents, doc)
		result.TotalPages += doc.Pages

		switch input.Mode {
		case ModeRaster:
			pageURLs = append(pageURLs, urls...)
			for i, u := range urls {
				result.Pages = append(result.Pages, Page{Doc: docIndex, Index: i, URL: u})
			}
		case ModePDFJS:
			pdfDocs = append(pdfDocs, pipeline.PDFDoc{
				URL:   urls[0],
				Pages: doc.Pages,
				Title: doc.Title,
			})
			for i := 0; i < doc.Pages; i++ {
				result.Pages = append(result.Pages, Page{Doc: docIndex, Index: i, URL: urls[0]})
			}
		}
	}

	aboutHTML, err := s.renderAbout(ctx, input)
	if err != nil {
		return nil, err
	}

	previewImage := ""
	if input.Viewer != nil && input.Viewer.Preview {
		previewImage = "./" + previewImageName
	}

	entryHTML, err := s.renderEntry(ctx, input, result, pageURLs, pdfDocs, aboutHTML, previewImage)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(result.EntryPath, []byte(entryHTML), fileutil.FilePermissions); err != nil {
		return nil, fmt.Errorf("writing entry document: %w", err)
	}

	if previewImage != "" {
		previewPath := filepath.Join(input.OutputDir, previewImageName)
		if err := s.previewer.Capture(ctx, result.EntryPath, previewPath); err != nil {
			return nil, fmt.Errorf("capturing preview: %w", err)
		}
		result.Preview = previewPath
	}

	return result, nil
}

// Close releases resources (the preview browser, if one was started).
func (s *Service) Close() error {
	if s.previewer != nil {
		return s.previewer.Close()
	}
	return nil
}

// processDocument renders or copies one source PDF and returns its Document
// record plus the artifact URLs it contributes to the page list.
func (s *Service) processDocument(ctx context.Context, src string, input Input) (Document, []string, error) {
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	doc := Document{
		Title:      stem,
		Slug:       Slugify(stem),
		SourcePath: src,
	}

	oraclePages, oracleErr := s.counter.PageCount(src)
	if oracleErr == nil {
		doc.OraclePages = oraclePages
	}

	switch input.Mode {
	case ModeRaster:
		imgDir := filepath.Join(input.OutputDir, imageSubdir)
		if err := os.MkdirAll(imgDir, fileutil.DirPermissions); err != nil {
			return doc, nil, fmt.Errorf("creating image directory: %w", err)
		}

		images, err := s.rasterizer.Rasterize(ctx, src, imgDir, doc.Slug, input.DPI, input.Format)
		if err != nil {
			return doc, nil, err
		}
		doc.Pages = len(images)

		// The oracle disagreeing is logged, never fatal; the rasterizer's
		// output is what the viewer will serve.
		if oracleErr != nil {
			fmt.Fprintf(s.cfg.logW, "warning: page-count check unavailable for %s: %v\n", src, oracleErr)
		} else if doc.OraclePages != doc.Pages {
			fmt.Fprintf(s.cfg.logW, "warning: %s: rendered %d page(s), reader reports %d\n", src, doc.Pages, doc.OraclePages)
		}

		urls := make([]string, len(images))
		for i, img := range images {
			urls[i] = "./" + imageSubdir + "/" + filepath.Base(img)
		}
		return doc, urls, nil

	case ModePDFJS:
		// Client-side rendering needs the page count up front to build the
		// flattened page list, so the oracle is load-bearing here.
		if oracleErr != nil {
			return doc, nil, fmt.Errorf("reading page count for %s: %w", src, oracleErr)
		}
		doc.Pages = oraclePages

		dst := filepath.Join(input.OutputDir, pdfSubdir, doc.Slug+".pdf")
		if err := fileutil.CopyFile(src, dst); err != nil {
			return doc, nil, err
		}
		return doc, []string{"./" + pdfSubdir + "/" + doc.Slug + ".pdf"}, nil
	}

	return doc, nil, fmt.Errorf("%w: %q", ErrInvalidMode, input.Mode)
}

// renderAbout renders the optional about-panel markdown. A missing
// auto-detected about.md is not an error; a missing explicitly configured
// file is.
func (s *Service) renderAbout(ctx context.Context, input Input) (template.HTML, error) {
	path := ""
	explicit := false
	if input.Site != nil && input.Site.About != "" {
		path = input.Site.About
		explicit = true
	} else {
		path = filepath.Join(input.InputDir, defaultAboutFile)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided or input-relative path
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return "", nil
		}
		return "", fmt.Errorf("%w: reading %s: %v", ErrAboutRender, path, err)
	}

	rendered, err := s.markdown.ToHTML(ctx, string(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAboutRender, err)
	}
	return template.HTML(rendered), nil // #nosec G203 -- goldmark output with unsafe HTML disabled
}

// renderEntry assembles the entry document for the selected mode.
func (s *Service) renderEntry(ctx context.Context, input Input, result *BuildResult,
	pageURLs []string, pdfDocs []pipeline.PDFDoc, aboutHTML template.HTML, previewImage string) (string, error) {

	title := siteTitle(input, result.Documents)
	date := ""
	if input.Site != nil {
		date = input.Site.Date
	}
	maxZoom := DefaultMaxZoom
	if input.Viewer != nil && input.Viewer.MaxZoom != 0 {
		maxZoom = input.Viewer.MaxZoom
	}

	switch input.Mode {
	case ModePDFJS:
		base := DefaultPDFJSBase
		if input.Viewer != nil && input.Viewer.PDFJSBase != "" {
			base = input.Viewer.PDFJSBase
		}
		html, err := s.builder.RenderPDFJS(ctx, pipeline.PDFJSSite{
			Title:         title,
			Date:          date,
			PreviewImage:  previewImage,
			AboutHTML:     aboutHTML,
			Docs:          pdfDocs,
			MaxZoom:       maxZoom,
			PDFJSBase:     base,
			LoadTimeoutMs: DefaultLoadMillis,
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrViewerRender, err)
		}
		return html, nil

	default:
		html, err := s.builder.RenderRaster(ctx, pipeline.RasterSite{
			Title:        title,
			Date:         date,
			PreviewImage: previewImage,
			AboutHTML:    aboutHTML,
			Pages:        pageURLs,
			MaxZoom:      maxZoom,
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrViewerRender, err)
		}
		return html, nil
	}
}

// siteTitle picks the entry-document title: configured title, else the first
// document's title, else the empty-state label.
func siteTitle(input Input, docs []Document) string {
	if input.Site != nil && input.Site.Title != "" {
		return input.Site.Title
	}
	if len(docs) > 0 {
		return docs[0].Title
	}
	return "No documents"
}

// applyDefaults fills zero-valued input fields with library defaults.
func applyDefaults(input *Input) {
	if input.Mode == "" {
		input.Mode = ModeRaster
	}
	input.Mode = strings.ToLower(input.Mode)
	if input.DPI == 0 {
		input.DPI = DefaultDPI
	}
	if input.Format == "" {
		input.Format = FormatPNG
	}
	input.Format = strings.ToLower(input.Format)
}

// discoverPDFs enumerates *.pdf files in dir (case-insensitive, no
// recursion), sorted by name for deterministic builds. A missing input
// directory yields an empty site rather than an error, matching the
// zero-sources contract.
func discoverPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
