package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet_KnownThemes(t *testing.T) {
	for _, name := range []string{"catppuccin-mocha", "Nord", "dracula", "Gruvbox Dark", "tokyo-night"} {
		if _, ok := Get(name); !ok {
			t.Errorf("expected catalog to contain %q", name)
		}
	}
}

func TestGet_UnknownTheme(t *testing.T) {
	if _, ok := Get("no-such-theme"); ok {
		t.Error("expected lookup of unknown theme to fail")
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	if len(names) != len(Catalog) {
		t.Fatalf("expected %d names, got %d", len(Catalog), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %q > %q", names[i-1], names[i])
		}
	}
}

func TestNewStyles_UsesThemeColors(t *testing.T) {
	s := NewStyles(Nord)
	if got := s.Error.GetForeground(); got != Nord.Red {
		t.Errorf("expected error style foreground %v, got %v", Nord.Red, got)
	}
	if got := s.Cursor.GetBackground(); got != Nord.Overlay {
		t.Errorf("expected cursor background %v, got %v", Nord.Overlay, got)
	}
}

func TestLoadCustomTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	data := `
name: My Theme
base: "#000000"
text: "#ffffff"
red: "#ff0000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	th, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if th.Name != "My Theme" {
		t.Errorf("expected name 'My Theme', got %q", th.Name)
	}
	if string(th.Red) != "#ff0000" {
		t.Errorf("expected red #ff0000, got %q", th.Red)
	}
}

func TestLoadCustomTheme_NameDefaultsToFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.yaml")
	if err := os.WriteFile(path, []byte("base: \"#111111\"\n"), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	th, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if th.Name != "unnamed" {
		t.Errorf("expected name from filename, got %q", th.Name)
	}
}

func TestLoadCustomThemes_SkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.yaml"), []byte("name: Good\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(": not yaml {{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	themes := LoadCustomThemes(dir)
	if len(themes) != 1 {
		t.Fatalf("expected 1 theme, got %d", len(themes))
	}
	if _, ok := themes["good"]; !ok {
		t.Error("expected 'good' theme to load")
	}
}
