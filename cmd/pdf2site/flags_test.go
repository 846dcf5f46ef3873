package main

import (
	"testing"
)

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults when no flags", func(t *testing.T) {
		t.Parallel()
		flags, args, err := parseBuildFlags([]string{"pdfs"})
		if err != nil {
			t.Fatalf("parseBuildFlags() error = %v", err)
		}
		if len(args) != 1 || args[0] != "pdfs" {
			t.Errorf("positional args = %v, want [pdfs]", args)
		}
		if flags.render.mode != "" || flags.render.dpi != 0 {
			t.Errorf("render flags not zero: %+v", flags.render)
		}
		if flags.common.quiet || flags.common.verbose {
			t.Error("output-control flags should default to false")
		}
	})

	t.Run("all flag groups parsed", func(t *testing.T) {
		t.Parallel()
		flags, args, err := parseBuildFlags([]string{
			"--output", "site",
			"--mode", "pdfjs",
			"--dpi", "150",
			"--format", "jpeg",
			"--title", "My Portfolio",
			"--date", "auto:long",
			"--about", "intro.md",
			"--max-zoom", "8",
			"--pdfjs-base", "./vendor/pdfjs",
			"--preview",
			"--timeout", "45s",
			"--asset-path", "assets",
			"--config", "prod",
			"--verbose",
			"input",
		})
		if err != nil {
			t.Fatalf("parseBuildFlags() error = %v", err)
		}

		if flags.output != "site" {
			t.Errorf("output = %q", flags.output)
		}
		if flags.render.mode != "pdfjs" || flags.render.dpi != 150 || flags.render.format != "jpeg" {
			t.Errorf("render flags = %+v", flags.render)
		}
		if flags.site.title != "My Portfolio" || flags.site.date != "auto:long" || flags.site.about != "intro.md" {
			t.Errorf("site flags = %+v", flags.site)
		}
		if flags.viewer.maxZoom != 8 || flags.viewer.pdfjsBase != "./vendor/pdfjs" || !flags.viewer.preview {
			t.Errorf("viewer flags = %+v", flags.viewer)
		}
		if flags.timeout != "45s" || flags.assets.assetPath != "assets" {
			t.Errorf("timeout/assets = %q/%q", flags.timeout, flags.assets.assetPath)
		}
		if flags.common.config != "prod" || !flags.common.verbose {
			t.Errorf("common flags = %+v", flags.common)
		}
		if len(args) != 1 || args[0] != "input" {
			t.Errorf("positional args = %v", args)
		}
	})

	t.Run("shorthands work", func(t *testing.T) {
		t.Parallel()
		flags, _, err := parseBuildFlags([]string{"-o", "site", "-m", "raster", "-c", "dev", "-q", "-t", "1m"})
		if err != nil {
			t.Fatalf("parseBuildFlags() error = %v", err)
		}
		if flags.output != "site" || flags.render.mode != "raster" ||
			flags.common.config != "dev" || !flags.common.quiet || flags.timeout != "1m" {
			t.Errorf("shorthand parsing failed: %+v", flags)
		}
	})

	t.Run("unknown flag errors", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseBuildFlags([]string{"--no-such-flag"})
		if err == nil {
			t.Error("parseBuildFlags() = nil, want error")
		}
	})
}
