// Package assets provides the viewer templates, styles, and scripts used to
// assemble the generated entry document. Assets can be loaded from embedded
// files or a custom filesystem path.
package assets

// AssetLoader abstracts asset loading so the embedded defaults can be
// overridden from a directory on disk.
type AssetLoader interface {
	// LoadTemplate returns an HTML template by name (no extension).
	LoadTemplate(name string) (string, error)
	// LoadStyle returns a CSS asset by name (no extension).
	LoadStyle(name string) (string, error)
	// LoadScript returns a JS asset by name (no extension).
	LoadScript(name string) (string, error)
}
