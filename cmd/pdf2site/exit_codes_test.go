package main

import (
	"fmt"
	"os"
	"testing"

	pdf2site "github.com/alnah/go-pdf2site"
	"github.com/alnah/go-pdf2site/internal/config"
	"github.com/alnah/go-pdf2site/internal/dateutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"generic error", fmt.Errorf("boom"), ExitGeneral},

		// External tools (exit 4)
		{"rasterizer missing", pdf2site.ErrRasterizerNotFound, ExitTool},
		{"rasterize failed", pdf2site.ErrRasterizeFailed, ExitTool},
		{"browser connect", pdf2site.ErrBrowserConnect, ExitTool},
		{"page load", pdf2site.ErrPageLoad, ExitTool},
		{"screenshot", pdf2site.ErrScreenshot, ExitTool},

		// I/O (exit 3)
		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"no input", ErrNoInput, ExitIO},

		// Usage (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"bad date format", dateutil.ErrInvalidDateFormat, ExitUsage},
		{"empty input dir", pdf2site.ErrEmptyInputDir, ExitUsage},
		{"invalid mode", pdf2site.ErrInvalidMode, ExitUsage},
		{"invalid dpi", pdf2site.ErrInvalidDPI, ExitUsage},
		{"invalid format", pdf2site.ErrInvalidFormat, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},

		// Wrapped errors resolve through errors.Is
		{"wrapped tool error", fmt.Errorf("build: %w", pdf2site.ErrRasterizeFailed), ExitTool},
		{"wrapped usage error", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
