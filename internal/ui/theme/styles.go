package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Panel borders
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Hint     lipgloss.Style

	// History list
	ListItem    lipgloss.Style
	ListTime    lipgloss.Style
	Whitespace  lipgloss.Style // placeholder rendering for whitespace-only entries
	Cursor      lipgloss.Style
	SearchMatch lipgloss.Style

	// Components
	StatusBar  lipgloss.Style
	SearchBar  lipgloss.Style
	Selected   lipgloss.Style
	ToastInfo  lipgloss.Style
	ToastError lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused),
		UnfocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused),

		Title:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Subtext),
		Normal:   lipgloss.NewStyle().Foreground(t.Text),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Bold:     lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(t.Red),
		Success:  lipgloss.NewStyle().Foreground(t.Green),
		Warning:  lipgloss.NewStyle().Foreground(t.Yellow),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Text),
		ListTime: lipgloss.NewStyle().
			Foreground(t.Muted),
		Whitespace: lipgloss.NewStyle().
			Foreground(t.Peach).
			Italic(true),
		Cursor: lipgloss.NewStyle().
			Background(t.Overlay).
			Foreground(t.Text),
		SearchMatch: lipgloss.NewStyle().
			Foreground(t.Yellow).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		SearchBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Yellow).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text),
		ToastInfo: lipgloss.NewStyle().
			Foreground(t.Green).
			Background(t.Surface).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Green),
		ToastError: lipgloss.NewStyle().
			Foreground(t.Red).
			Background(t.Surface).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Red),
	}
}
