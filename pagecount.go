package pdf2site

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageCounter reports a PDF's page count independently of the rasterizer.
// Used as a sanity check; disagreement is logged, never fatal.
type PageCounter interface {
	PageCount(pdfPath string) (int, error)
}

// PdfcpuCounter counts pages by parsing the PDF with pdfcpu.
type PdfcpuCounter struct{}

// NewPdfcpuCounter creates a PdfcpuCounter.
func NewPdfcpuCounter() *PdfcpuCounter {
	return &PdfcpuCounter{}
}

// Compile-time interface check.
var _ PageCounter = (*PdfcpuCounter)(nil)

// PageCount returns the number of pages in the PDF at pdfPath.
func (c *PdfcpuCounter) PageCount(pdfPath string) (int, error) {
	n, err := api.PageCountFile(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("counting pages in %s: %w", pdfPath, err)
	}
	return n, nil
}
