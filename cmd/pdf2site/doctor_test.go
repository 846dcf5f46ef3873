package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIsContainer(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv("PDF2SITE_CONTAINER", "1")

		ok, hint := isContainer()
		if !ok {
			t.Fatal("isContainer() = false, want true")
		}
		if hint != "PDF2SITE_CONTAINER=1" {
			t.Errorf("hint = %q", hint)
		}
	})

	t.Run("container env variable detected", func(t *testing.T) {
		t.Setenv("PDF2SITE_CONTAINER", "")
		t.Setenv("container", "podman")

		ok, hint := isContainer()
		if !ok {
			t.Fatal("isContainer() = false, want true")
		}
		// /.dockerenv takes precedence when the tests themselves run in Docker
		if hint != "container=podman" && hint != "/.dockerenv" {
			t.Errorf("hint = %q", hint)
		}
	})
}

func TestCheckEnvironment(t *testing.T) {
	t.Run("ci detected", func(t *testing.T) {
		t.Setenv("CI", "true")

		result := &doctorResult{}
		checkEnvironment(result)

		if !result.Env.CI {
			t.Error("CI not detected")
		}
	})

	t.Run("ci without sandbox override warns", func(t *testing.T) {
		t.Setenv("CI", "true")
		t.Setenv("ROD_NO_SANDBOX", "")

		result := &doctorResult{}
		checkEnvironment(result)

		found := false
		for _, w := range result.Warnings {
			if strings.Contains(w, "ROD_NO_SANDBOX") {
				found = true
			}
		}
		if !found {
			t.Errorf("warnings = %v, want sandbox hint", result.Warnings)
		}
	})
}

func TestCheckSystem(t *testing.T) {
	t.Parallel()

	result := &doctorResult{}
	checkSystem(result)

	if !result.System.TempWritable {
		t.Errorf("temp not writable: %v", result.Errors)
	}
}

func TestRunDoctorCmd(t *testing.T) {
	t.Run("json output decodes", func(t *testing.T) {
		env, stdout, _ := newTestEnv()

		runDoctorCmd([]string{"--json"}, env)

		var result doctorResult
		if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
			t.Fatalf("decoding doctor output: %v\n%s", err, stdout.String())
		}
		switch result.Status {
		case "ready", "warnings", "errors":
		default:
			t.Errorf("Status = %q", result.Status)
		}
	})

	t.Run("human output has sections", func(t *testing.T) {
		env, stdout, _ := newTestEnv()

		runDoctorCmd(nil, env)

		out := stdout.String()
		for _, section := range []string{"Poppler (pdftoppm)", "Chrome/Chromium", "Environment", "System", "Status:"} {
			if !strings.Contains(out, section) {
				t.Errorf("output missing section %q", section)
			}
		}
	})
}
