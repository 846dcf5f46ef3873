package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	pdf2site "github.com/alnah/go-pdf2site"
	"github.com/alnah/go-pdf2site/internal/assets"
	"github.com/alnah/go-pdf2site/internal/config"
	"github.com/alnah/go-pdf2site/internal/dateutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input directory specified")
	ErrInvalidTimeout = errors.New("invalid timeout value")
)

// defaultOutputDir is the output fallback when neither flags, env vars,
// nor config name a destination.
const defaultOutputDir = "dist"

// Builder is the interface for the site-generation service.
type Builder interface {
	Build(ctx context.Context, input pdf2site.Input) (*pdf2site.BuildResult, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Builder = (*pdf2site.Service)(nil)

// runBuild orchestrates the build process.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	// Load configuration: explicit flag, then PDF2SITE_CONFIG, then defaults
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg := env.Config
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Env vars fill gaps the config file left; flags override both
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	// Resolve "auto" date once per build
	resolvedDate, err := dateutil.ResolveDate(cfg.Site.Date, env.Now())
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	cfg.Site.Date = resolvedDate

	inputDir, err := resolveInputDir(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	timeout, err := resolveTimeout(flags.timeout, envCfg)
	if err != nil {
		return err
	}

	loader := env.AssetLoader
	if flags.assets.assetPath != "" {
		loader, err = assets.NewFilesystemLoader(flags.assets.assetPath)
		if err != nil {
			return fmt.Errorf("loading assets: %w", err)
		}
	}

	opts := []pdf2site.Option{
		pdf2site.WithAssetLoader(loader),
		pdf2site.WithLogWriter(env.Stderr),
	}
	if timeout > 0 {
		opts = append(opts, pdf2site.WithTimeout(timeout))
	}

	service := pdf2site.New(opts...)
	defer func() { _ = service.Close() }()

	start := env.Now()
	result, err := service.Build(ctx, pdf2site.Input{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Mode:      cfg.Render.Mode,
		DPI:       cfg.Render.DPI,
		Format:    cfg.Render.Format,
		Site: &pdf2site.SiteSettings{
			Title: cfg.Site.Title,
			Date:  cfg.Site.Date,
			About: cfg.Site.About,
		},
		Viewer: &pdf2site.ViewerSettings{
			MaxZoom:   cfg.Viewer.MaxZoom,
			PDFJSBase: cfg.Viewer.PDFJSBase,
			Preview:   cfg.Viewer.Preview,
		},
	})
	if err != nil {
		return err
	}

	printBuildResult(result, flags.common.quiet, flags.common.verbose, time.Since(start), env)
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	// Render flags
	if flags.render.mode != "" {
		cfg.Render.Mode = flags.render.mode
	}
	if flags.render.dpi != 0 {
		cfg.Render.DPI = flags.render.dpi
	}
	if flags.render.format != "" {
		cfg.Render.Format = flags.render.format
	}

	// Site flags
	if flags.site.title != "" {
		cfg.Site.Title = flags.site.title
	}
	if flags.site.date != "" {
		cfg.Site.Date = flags.site.date
	}
	if flags.site.about != "" {
		cfg.Site.About = flags.site.about
	}

	// Viewer flags
	if flags.viewer.maxZoom != 0 {
		cfg.Viewer.MaxZoom = flags.viewer.maxZoom
	}
	if flags.viewer.pdfjsBase != "" {
		cfg.Viewer.PDFJSBase = flags.viewer.pdfjsBase
	}
	if flags.viewer.preview {
		cfg.Viewer.Preview = true
	}
}

// resolveInputDir determines the input directory from args or config.
func resolveInputDir(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.Dir != "" {
		return cfg.Input.Dir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory: flag, config, fallback.
func resolveOutputDir(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	return defaultOutputDir
}

// resolveTimeout parses the timeout flag, falling back to the env var.
// Returns 0 when neither is set (library default applies).
func resolveTimeout(flagValue string, envCfg *envConfig) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	return envCfg.Timeout, nil
}

// printBuildResult outputs a build summary using the provided writers.
func printBuildResult(r *pdf2site.BuildResult, quiet, verbose bool, elapsed time.Duration, env *Environment) {
	if quiet {
		return
	}

	if verbose {
		for _, doc := range r.Documents {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d page(s))\n", doc.SourcePath, doc.Slug, doc.Pages)
		}
	}

	fmt.Fprintf(env.Stdout, "Created %s (%d document(s), %d page(s))\n",
		r.EntryPath, len(r.Documents), r.TotalPages)
	if r.Preview != "" {
		fmt.Fprintf(env.Stdout, "Created %s\n", r.Preview)
	}
	if verbose {
		fmt.Fprintf(env.Stdout, "Build took %v\n", elapsed.Round(time.Millisecond))
	}
}
