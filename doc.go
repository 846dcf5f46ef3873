// Package pdf2site converts a directory of PDF files into a static,
// browser-viewable website: one HTML entry document showing one page at a
// time, fit to the viewport, with arrow-key, swipe, and zoom navigation.
//
// # Quick Start
//
// Create a service, build the site, and inspect the result:
//
//	svc := pdf2site.New()
//
//	result, err := svc.Build(ctx, pdf2site.Input{
//	    InputDir:  "pdfs",
//	    OutputDir: "dist",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("built %d document(s), %d page(s)\n", len(result.Documents), result.TotalPages)
//
// The output directory is fully regenerated on every build. No state
// persists between runs.
//
// # Build Pipeline
//
// The build follows these stages, sequentially per source file:
//
//  1. Discovery: enumerate *.pdf in the input directory (case-insensitive,
//     sorted by name for determinism)
//  2. Rendering: rasterize each page to PNG via pdftoppm (raster mode), or
//     copy the PDF verbatim for client-side rendering (pdfjs mode)
//  3. Page-count cross-check against an independent PDF reader (pdfcpu);
//     mismatches are logged, never fatal
//  4. Site emission: one index.html assembled from embedded templates, with
//     the ordered page list embedded as JSON
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := pdf2site.New(
//	    pdf2site.WithTimeout(2*time.Minute),
//	    pdf2site.WithAssetLoader(loader),
//	)
//
// Per-build options are passed via Input:
//
//	result, err := svc.Build(ctx, pdf2site.Input{
//	    InputDir:  "pdfs",
//	    OutputDir: "dist",
//	    Mode:      pdf2site.ModePDFJS,
//	    DPI:       450,
//	    Site:      &pdf2site.SiteSettings{Title: "Reports"},
//	})
//
// # External Tool Requirements
//
// Raster mode shells out to pdftoppm from poppler-utils; the build aborts
// if the tool is missing or produces no pages for a non-empty PDF. Pdfjs
// mode needs no external tool at build time; the generated page loads the
// pdf.js runtime from a configurable base URL at view time.
//
// The optional preview screenshot requires Chrome/Chromium; go-rod
// downloads a managed Chromium on first run. Set ROD_NO_SANDBOX=1 in
// containers and ROD_BROWSER_BIN to pin a browser binary.
package pdf2site
