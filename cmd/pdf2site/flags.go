package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds page-rendering flags.
type renderFlags struct {
	mode   string
	dpi    int
	format string
}

// siteFlags holds entry-document metadata flags.
type siteFlags struct {
	title string
	date  string
	about string
}

// viewerFlags holds client-side viewer flags.
type viewerFlags struct {
	maxZoom   float64
	pdfjsBase string
	preview   bool
}

// assetFlags holds asset override flags.
type assetFlags struct {
	assetPath string // Override embedded templates/styles/scripts
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	output  string
	timeout string
	render  renderFlags
	site    siteFlags
	viewer  viewerFlags
	assets  assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.mode, "mode", "m", "", "render mode: raster, pdfjs")
	fs.IntVar(&f.dpi, "dpi", 0, "raster resolution in DPI (72-1200, default: 300)")
	fs.StringVar(&f.format, "format", "", "page image format: png, jpeg")
}

// addSiteFlags adds site metadata flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.title, "title", "", "site title (\"\" = first document name)")
	fs.StringVar(&f.date, "date", "", "site date (\"auto\" = today)")
	fs.StringVar(&f.about, "about", "", "markdown file for the info panel")
}

// addViewerFlags adds viewer flags to a FlagSet.
func addViewerFlags(fs *flag.FlagSet, f *viewerFlags) {
	fs.Float64Var(&f.maxZoom, "max-zoom", 0, "upper zoom bound (1.0-16.0, default: 5.0)")
	fs.StringVar(&f.pdfjsBase, "pdfjs-base", "", "pdf.js build base URL or local directory")
	fs.BoolVar(&f.preview, "preview", false, "capture preview.png of the built site")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory (wiped per build)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "preview capture timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addSiteFlags(fs, &f.site)
	addViewerFlags(fs, &f.viewer)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
