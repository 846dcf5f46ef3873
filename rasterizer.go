package pdf2site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Rasterizer abstracts page rasterization to allow different backends.
type Rasterizer interface {
	// Rasterize renders every page of the PDF at pdfPath into outDir, one
	// image per page named "<slug>-<n>.<ext>", and returns the image paths
	// ordered by page number.
	Rasterize(ctx context.Context, pdfPath, outDir, slug string, dpi int, format string) ([]string, error)
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	LookPath(name string) (string, error)
	Run(name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) Run(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// pdftoppmTool is the poppler-utils page rasterization binary.
const pdftoppmTool = "pdftoppm"

// PdftoppmRasterizer renders PDF pages to images by invoking pdftoppm.
type PdftoppmRasterizer struct {
	Runner CommandRunner
}

// NewPdftoppmRasterizer creates a PdftoppmRasterizer with a real command runner.
func NewPdftoppmRasterizer() *PdftoppmRasterizer {
	return &PdftoppmRasterizer{Runner: &ExecRunner{}}
}

// Compile-time interface check.
var _ Rasterizer = (*PdftoppmRasterizer)(nil)

// pageSuffixPattern matches the "<n>.<ext>" remainder pdftoppm appends after
// the output prefix ("slug-1.png", "slug-07.png"). Anchored on both ends so a
// slug that is a prefix of another slug ("report" vs "report-2") cannot claim
// the other document's pages.
var pageSuffixPattern = regexp.MustCompile(`^(\d+)\.(?:png|jpg|jpeg)$`)

// Rasterize invokes pdftoppm once for the whole document and enumerates its
// per-page output files. The subprocess is waited on synchronously and is
// not cancelled once started; the context is only consulted before launch.
func (p *PdftoppmRasterizer) Rasterize(ctx context.Context, pdfPath, outDir, slug string, dpi int, format string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := p.Runner.LookPath(pdftoppmTool); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterizerNotFound, err)
	}

	formatFlag := "-png"
	if format == FormatJPEG {
		formatFlag = "-jpeg"
	}

	prefix := filepath.Join(outDir, slug)
	_, stderr, err := p.Runner.Run(pdftoppmTool, formatFlag, "-r", strconv.Itoa(dpi), pdfPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %v", ErrRasterizeFailed, pdfPath, stderr, err)
	}

	images, err := enumeratePageImages(outDir, slug)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPagesRendered, pdfPath)
	}

	return images, nil
}

// enumeratePageImages lists "<slug>-<n>.*" files in dir, ordered by the page
// number embedded in the filename.
func enumeratePageImages(dir, slug string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory: %w", err)
	}

	type pageImage struct {
		num  int
		path string
	}

	var images []pageImage
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		n, ok := pageNumberFromFilename(name, slug)
		if !ok {
			continue
		}
		images = append(images, pageImage{num: n, path: filepath.Join(dir, name)})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].num < images[j].num })

	paths := make([]string, len(images))
	for i, img := range images {
		paths[i] = img.path
	}
	return paths, nil
}

// pageNumberFromFilename parses the "-<n>.<ext>" page number from one of
// slug's output files. The whole remainder after "<slug>-" must be the page
// number and extension; anything else belongs to a different document.
func pageNumberFromFilename(name, slug string) (int, bool) {
	suffix, found := strings.CutPrefix(name, slug+"-")
	if !found {
		return 0, false
	}
	m := pageSuffixPattern.FindStringSubmatch(suffix)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
