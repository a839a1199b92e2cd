package theme

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Mantle:  lipgloss.Color("#181825"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Pink:     lipgloss.Color("#f5c2e7"),
	Mauve:    lipgloss.Color("#cba6f7"),
	Red:      lipgloss.Color("#f38ba8"),
	Peach:    lipgloss.Color("#fab387"),
	Yellow:   lipgloss.Color("#f9e2af"),
	Green:    lipgloss.Color("#a6e3a1"),
	Teal:     lipgloss.Color("#94e2d5"),
	Blue:     lipgloss.Color("#89b4fa"),
	Lavender: lipgloss.Color("#b4befe"),

	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
	StatusOK:        lipgloss.Color("#a6e3a1"),
	StatusError:     lipgloss.Color("#f38ba8"),
	StatusWarning:   lipgloss.Color("#f9e2af"),
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// CustomThemesDir returns where user themes live (~/.config/klip/themes).
func CustomThemesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "klip", "themes")
}

// Resolve looks up a theme by name: catalog first, then custom YAML themes,
// falling back to the default.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}
	if dir := CustomThemesDir(); dir != "" {
		custom := LoadCustomThemes(dir)
		if t, ok := custom[normalizeKey(name)]; ok {
			return t
		}
	}
	return Default()
}
