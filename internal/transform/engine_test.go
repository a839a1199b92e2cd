package transform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBuiltins(t *testing.T) {
	e := NewEngine(time.Second)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trim", "  padded \n", "padded"},
		{"uppercase", "shout", "SHOUT"},
		{"lowercase", "QUIET", "quiet"},
		{"json-ugly", "{ \"a\": 1 }", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Apply(tt.name, tt.input)
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestApply_UnknownTransform(t *testing.T) {
	e := NewEngine(time.Second)
	if _, err := e.Apply("nope", "x"); err == nil {
		t.Fatal("expected error for unknown transform")
	}
}

func TestScriptTransform(t *testing.T) {
	e := NewEngine(time.Second)
	e.RegisterScript("reverse-lines", `input.split("\n").reverse().join("\n")`)

	got, err := e.Apply("reverse-lines", "a\nb\nc")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got != "c\nb\na" {
		t.Errorf("expected %q, got %q", "c\nb\na", got)
	}
}

func TestScriptTransform_ErrorSurfaces(t *testing.T) {
	e := NewEngine(time.Second)
	e.RegisterScript("broken", `not valid javascript ][`)

	if _, err := e.Apply("broken", "x"); err == nil {
		t.Fatal("expected script error to surface")
	}
}

func TestScriptTransform_TimeoutInterruptsRunawayScript(t *testing.T) {
	e := NewEngine(50 * time.Millisecond)
	e.RegisterScript("spin", `while (true) {}`)

	start := time.Now()
	_, err := e.Apply("spin", "x")
	if err == nil {
		t.Fatal("expected runaway script to be interrupted")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("interrupt took too long: %v", elapsed)
	}
}

func TestLoadScripts(t *testing.T) {
	dir := t.TempDir()
	script := `"<" + input + ">"`
	if err := os.WriteFile(filepath.Join(dir, "bracket.js"), []byte(script), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("writing non-script: %v", err)
	}

	e := NewEngine(time.Second)
	skipped := e.LoadScripts(dir)
	if len(skipped) != 0 {
		t.Errorf("expected nothing skipped, got %v", skipped)
	}

	got, err := e.Apply("bracket", "mid")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got != "<mid>" {
		t.Errorf("expected %q, got %q", "<mid>", got)
	}

	names := strings.Join(e.Names(), ",")
	if !strings.Contains(names, "bracket") || !strings.Contains(names, "trim") {
		t.Errorf("expected names to include script and builtins, got %s", names)
	}
}

func TestLoadScripts_MissingDir(t *testing.T) {
	e := NewEngine(time.Second)
	if skipped := e.LoadScripts("/nonexistent/transforms"); skipped != nil {
		t.Errorf("expected nil for missing dir, got %v", skipped)
	}
}
