package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"

	"github.com/alnah/go-pdf2site/internal/assets"
)

// Sentinel errors for viewer assembly.
var (
	ErrViewerTemplate = errors.New("viewer template parsing failed")
	ErrViewerExecute  = errors.New("viewer template execution failed")
	ErrPageListEncode = errors.New("page list encoding failed")
)

// Asset names used for the entry document.
const (
	styleName          = "viewer"
	rasterTemplateName = "raster"
	pdfjsTemplateName  = "pdfjs"
)

// RasterSite describes a raster-mode site: a flattened, ordered list of
// page-image URLs.
type RasterSite struct {
	Title        string
	Date         string
	PreviewImage string
	AboutHTML    template.HTML
	Pages        []string // relative image URLs, in page order
	MaxZoom      float64
}

// PDFDoc is one copied PDF in a pdfjs-mode site.
type PDFDoc struct {
	URL   string `json:"url"`
	Pages int    `json:"pages"`
	Title string `json:"title"`
}

// PDFJSSite describes a pdfjs-mode site: copied PDFs rendered client-side.
type PDFJSSite struct {
	Title         string
	Date          string
	PreviewImage  string
	AboutHTML     template.HTML
	Docs          []PDFDoc
	MaxZoom       float64
	PDFJSBase     string
	LoadTimeoutMs int
}

// viewerData is the template payload. Page-list data travels as JSON in
// PageData; markup structure stays in the template.
type viewerData struct {
	Title        string
	Date         string
	PreviewImage string
	AboutHTML    template.HTML
	CSS          template.CSS
	PageData     template.JS
	ConfigData   template.JS
	ViewerScript template.JS
}

// ViewerBuilder assembles the entry document from loaded assets.
type ViewerBuilder struct {
	loader assets.AssetLoader
}

// NewViewerBuilder creates a ViewerBuilder backed by the given asset loader.
func NewViewerBuilder(loader assets.AssetLoader) *ViewerBuilder {
	return &ViewerBuilder{loader: loader}
}

// RenderRaster produces the complete entry document for a raster-mode site.
func (b *ViewerBuilder) RenderRaster(ctx context.Context, site RasterSite) (string, error) {
	pages := site.Pages
	if pages == nil {
		pages = []string{} // encode as [] rather than null
	}
	pageJSON, err := encodeJS(pages)
	if err != nil {
		return "", err
	}

	configJSON, err := encodeJS(map[string]any{
		"maxZoom": site.MaxZoom,
	})
	if err != nil {
		return "", err
	}

	return b.render(ctx, rasterTemplateName, viewerData{
		Title:        site.Title,
		Date:         site.Date,
		PreviewImage: site.PreviewImage,
		AboutHTML:    site.AboutHTML,
		PageData:     pageJSON,
		ConfigData:   configJSON,
	})
}

// RenderPDFJS produces the complete entry document for a pdfjs-mode site.
func (b *ViewerBuilder) RenderPDFJS(ctx context.Context, site PDFJSSite) (string, error) {
	docs := site.Docs
	if docs == nil {
		docs = []PDFDoc{}
	}
	docJSON, err := encodeJS(docs)
	if err != nil {
		return "", err
	}

	configJSON, err := encodeJS(map[string]any{
		"maxZoom":       site.MaxZoom,
		"pdfjsBase":     site.PDFJSBase,
		"loadTimeoutMs": site.LoadTimeoutMs,
	})
	if err != nil {
		return "", err
	}

	return b.render(ctx, pdfjsTemplateName, viewerData{
		Title:        site.Title,
		Date:         site.Date,
		PreviewImage: site.PreviewImage,
		AboutHTML:    site.AboutHTML,
		PageData:     docJSON,
		ConfigData:   configJSON,
	})
}

// render loads the named template plus the shared style and script assets,
// then executes the template with the assembled data.
func (b *ViewerBuilder) render(ctx context.Context, templateName string, data viewerData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmplContent, err := b.loader.LoadTemplate(templateName)
	if err != nil {
		return "", err
	}
	cssContent, err := b.loader.LoadStyle(styleName)
	if err != nil {
		return "", err
	}
	scriptContent, err := b.loader.LoadScript(templateName)
	if err != nil {
		return "", err
	}

	data.CSS = template.CSS(cssContent)
	data.ViewerScript = template.JS(scriptContent)

	tmpl, err := template.New(templateName).Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrViewerTemplate, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrViewerExecute, err)
	}

	return buf.String(), nil
}

// encodeJS marshals v to JSON for embedding in the generated script block.
func encodeJS(v any) (template.JS, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageListEncode, err)
	}
	return template.JS(raw), nil // #nosec G203 -- JSON-encoded data, not user markup
}
