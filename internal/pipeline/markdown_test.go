package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter(t *testing.T) {
	t.Parallel()

	t.Run("converts basic markdown", func(t *testing.T) {
		t.Parallel()
		c := NewGoldmarkConverter()

		html, err := c.ToHTML(context.Background(), "# Title\n\nSome **bold** text.")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
			t.Errorf("unexpected output: %s", html)
		}
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		t.Parallel()
		c := NewGoldmarkConverter()

		md := "| A | B |\n|---|---|\n| 1 | 2 |"
		html, err := c.ToHTML(context.Background(), md)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(html, "<table>") {
			t.Errorf("table not rendered: %s", html)
		}
	})

	t.Run("raw HTML not passed through", func(t *testing.T) {
		t.Parallel()
		c := NewGoldmarkConverter()

		html, err := c.ToHTML(context.Background(), `<script>alert("x")</script>`)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if strings.Contains(html, "<script>") {
			t.Errorf("raw HTML leaked through: %s", html)
		}
	})

	t.Run("code blocks highlighted with classes", func(t *testing.T) {
		t.Parallel()
		c := NewGoldmarkConverter()

		md := "```go\nfunc main() {}\n```"
		html, err := c.ToHTML(context.Background(), md)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(html, "class") {
			t.Errorf("expected class-based highlighting: %s", html)
		}
	})

	t.Run("cancelled context returns error", func(t *testing.T) {
		t.Parallel()
		c := NewGoldmarkConverter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ToHTML(ctx, "# Title")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("empty content yields empty fragment", func(t *testing.T) {
		t.Parallel()
		c := NewGoldmarkConverter()

		html, err := c.ToHTML(context.Background(), "")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if strings.TrimSpace(html) != "" {
			t.Errorf("empty input produced %q", html)
		}
	})
}
