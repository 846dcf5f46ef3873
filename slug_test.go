package pdf2site

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple lowercase", "report", "report"},
		{"mixed case", "Annual Report", "annual-report"},
		{"multiple spaces collapse", "a   b", "a-b"},
		{"tabs and newlines", "a\tb\nc", "a-b-c"},
		{"special characters", "Q4 (final)!", "q4-final"},
		{"unicode replaced", "café menu", "caf-menu"},
		{"dots preserved", "v1.2.3", "v1.2.3"},
		{"underscores preserved", "my_file", "my_file"},
		{"hyphens preserved", "already-slugged", "already-slugged"},
		{"leading trailing trimmed", " - edges - ", "edges"},
		{"consecutive specials collapse", "a!!@@b", "a-b"},
		{"empty string", "", ""},
		{"only specials", "!!!", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	t.Parallel()

	input := "Some Document (2025)"
	first := Slugify(input)
	for i := 0; i < 10; i++ {
		if got := Slugify(input); got != first {
			t.Fatalf("Slugify not deterministic: %q then %q", first, got)
		}
	}
}
