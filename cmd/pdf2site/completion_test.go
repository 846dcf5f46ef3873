package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	t.Run("bash script", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := GenerateCompletion(&buf, ShellBash); err != nil {
			t.Fatalf("GenerateCompletion() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "complete -F _pdf2site pdf2site") {
			t.Error("bash script missing complete registration")
		}
		for _, want := range []string{"build", "doctor", "version", "completion", "help"} {
			if !strings.Contains(out, want) {
				t.Errorf("bash script missing command %q", want)
			}
		}
		if !strings.Contains(out, "raster pdfjs") {
			t.Error("bash script missing mode enum values")
		}
	})

	t.Run("zsh script", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := GenerateCompletion(&buf, ShellZsh); err != nil {
			t.Fatalf("GenerateCompletion() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "#compdef pdf2site") {
			t.Error("zsh script missing compdef header")
		}
		if !strings.Contains(out, "--pdfjs-base") {
			t.Error("zsh script missing build flags")
		}
	})

	t.Run("fish script", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := GenerateCompletion(&buf, ShellFish); err != nil {
			t.Fatalf("GenerateCompletion() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "complete -c pdf2site") {
			t.Error("fish script missing complete commands")
		}
		if !strings.Contains(out, "__fish_seen_subcommand_from build") {
			t.Error("fish script missing build subcommand condition")
		}
	})

	t.Run("unsupported shell", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, Shell("powershell"))
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("error = %v, want ErrUnsupportedShell", err)
		}
	})
}

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := newTestEnv()
		if err := runCompletion(nil, env); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "Usage: pdf2site completion") {
			t.Errorf("stdout %q missing usage", stdout.String())
		}
	})

	t.Run("shell arg generates script", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := newTestEnv()
		if err := runCompletion([]string{"bash"}, env); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if stdout.Len() == 0 {
			t.Error("no script generated")
		}
	})
}

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	flags := extractFlagsFromFlagSet(buildFlagSet())

	byName := make(map[string]flagDef, len(flags))
	for _, f := range flags {
		byName[f.Long] = f
	}

	mode, ok := byName["mode"]
	if !ok {
		t.Fatal("mode flag not extracted")
	}
	if len(mode.Values) != 2 || mode.Values[0] != "raster" {
		t.Errorf("mode values = %v", mode.Values)
	}

	output, ok := byName["output"]
	if !ok {
		t.Fatal("output flag not extracted")
	}
	if !output.IsDir || output.Short != "o" {
		t.Errorf("output = %+v", output)
	}

	preview, ok := byName["preview"]
	if !ok {
		t.Fatal("preview flag not extracted")
	}
	if !preview.IsBool {
		t.Error("preview should be a bool flag")
	}
}
