package pdf2site

import (
	"regexp"
	"strings"
)

// Slug derivation rules: lowercase, whitespace to hyphens, anything outside
// [a-z0-9._-] to hyphens, runs collapsed, leading/trailing hyphens trimmed.
var (
	slugWhitespacePattern = regexp.MustCompile(`\s+`)
	slugInvalidPattern    = regexp.MustCompile(`[^a-z0-9._-]`)
	slugCollapsePattern   = regexp.MustCompile(`-+`)
)

// Slugify converts a filename stem into a deterministic, filesystem and
// URL-safe identifier. The same input always yields the same slug.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugWhitespacePattern.ReplaceAllString(s, "-")
	s = slugInvalidPattern.ReplaceAllString(s, "-")
	s = slugCollapsePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
