package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a directory, falling back to the
// embedded defaults for anything the directory does not provide.
// Directory layout mirrors the embedded one:
//
//	assets/
//	├── templates/raster.html
//	├── styles/viewer.css
//	└── scripts/raster.js
type FilesystemLoader struct {
	basePath string
	fallback *EmbeddedLoader
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath if basePath is not an existing directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	info, err := os.Stat(basePath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBasePath, basePath)
	}
	return &FilesystemLoader{basePath: basePath, fallback: NewEmbeddedLoader()}, nil
}

// LoadTemplate loads templates/<name>.html from the base path, falling back
// to the embedded template.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.load("templates", name+".html", func() (string, error) {
		return f.fallback.LoadTemplate(name)
	})
}

// LoadStyle loads styles/<name>.css from the base path, falling back to the
// embedded style.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.load("styles", name+".css", func() (string, error) {
		return f.fallback.LoadStyle(name)
	})
}

// LoadScript loads scripts/<name>.js from the base path, falling back to the
// embedded script.
func (f *FilesystemLoader) LoadScript(name string) (string, error) {
	return f.load("scripts", name+".js", func() (string, error) {
		return f.fallback.LoadScript(name)
	})
}

// load reads subdir/filename under the base path, or defers to fallback when
// the file is absent.
func (f *FilesystemLoader) load(subdir, filename string, fallback func() (string, error)) (string, error) {
	name := filename[:len(filename)-len(filepath.Ext(filename))]
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, subdir, filename)
	content, err := os.ReadFile(path) // #nosec G304 -- validated name under configured base
	if err != nil {
		if os.IsNotExist(err) {
			return fallback()
		}
		return "", fmt.Errorf("reading asset %s: %w", path, err)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
