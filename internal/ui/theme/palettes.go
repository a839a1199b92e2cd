package theme

import "github.com/charmbracelet/lipgloss"

var Nord = Theme{
	Name:    "Nord",
	Base:    lipgloss.Color("#2e3440"),
	Mantle:  lipgloss.Color("#292e39"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Pink:     lipgloss.Color("#b48ead"),
	Mauve:    lipgloss.Color("#b48ead"),
	Red:      lipgloss.Color("#bf616a"),
	Peach:    lipgloss.Color("#d08770"),
	Yellow:   lipgloss.Color("#ebcb8b"),
	Green:    lipgloss.Color("#a3be8c"),
	Teal:     lipgloss.Color("#8fbcbb"),
	Blue:     lipgloss.Color("#5e81ac"),
	Lavender: lipgloss.Color("#b48ead"),

	BorderFocused:   lipgloss.Color("#88c0d0"),
	BorderUnfocused: lipgloss.Color("#4c566a"),
	StatusOK:        lipgloss.Color("#a3be8c"),
	StatusError:     lipgloss.Color("#bf616a"),
	StatusWarning:   lipgloss.Color("#ebcb8b"),
}

var Dracula = Theme{
	Name:    "Dracula",
	Base:    lipgloss.Color("#282a36"),
	Mantle:  lipgloss.Color("#232530"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#565869"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#d8d8d2"),
	Muted:   lipgloss.Color("#6272a4"),

	Pink:     lipgloss.Color("#ff79c6"),
	Mauve:    lipgloss.Color("#bd93f9"),
	Red:      lipgloss.Color("#ff5555"),
	Peach:    lipgloss.Color("#ffb86c"),
	Yellow:   lipgloss.Color("#f1fa8c"),
	Green:    lipgloss.Color("#50fa7b"),
	Teal:     lipgloss.Color("#8be9fd"),
	Blue:     lipgloss.Color("#6272a4"),
	Lavender: lipgloss.Color("#bd93f9"),

	BorderFocused:   lipgloss.Color("#bd93f9"),
	BorderUnfocused: lipgloss.Color("#6272a4"),
	StatusOK:        lipgloss.Color("#50fa7b"),
	StatusError:     lipgloss.Color("#ff5555"),
	StatusWarning:   lipgloss.Color("#f1fa8c"),
}

var GruvboxDark = Theme{
	Name:    "Gruvbox Dark",
	Base:    lipgloss.Color("#282828"),
	Mantle:  lipgloss.Color("#1d2021"),
	Surface: lipgloss.Color("#3c3836"),
	Overlay: lipgloss.Color("#504945"),

	Text:    lipgloss.Color("#ebdbb2"),
	Subtext: lipgloss.Color("#d5c4a1"),
	Muted:   lipgloss.Color("#928374"),

	Pink:     lipgloss.Color("#d3869b"),
	Mauve:    lipgloss.Color("#d3869b"),
	Red:      lipgloss.Color("#fb4934"),
	Peach:    lipgloss.Color("#fe8019"),
	Yellow:   lipgloss.Color("#fabd2f"),
	Green:    lipgloss.Color("#b8bb26"),
	Teal:     lipgloss.Color("#8ec07c"),
	Blue:     lipgloss.Color("#83a598"),
	Lavender: lipgloss.Color("#d3869b"),

	BorderFocused:   lipgloss.Color("#fabd2f"),
	BorderUnfocused: lipgloss.Color("#665c54"),
	StatusOK:        lipgloss.Color("#b8bb26"),
	StatusError:     lipgloss.Color("#fb4934"),
	StatusWarning:   lipgloss.Color("#fabd2f"),
}

var TokyoNight = Theme{
	Name:    "Tokyo Night",
	Base:    lipgloss.Color("#1a1b26"),
	Mantle:  lipgloss.Color("#16161e"),
	Surface: lipgloss.Color("#292e42"),
	Overlay: lipgloss.Color("#3b4261"),

	Text:    lipgloss.Color("#c0caf5"),
	Subtext: lipgloss.Color("#a9b1d6"),
	Muted:   lipgloss.Color("#565f89"),

	Pink:     lipgloss.Color("#ff007c"),
	Mauve:    lipgloss.Color("#bb9af7"),
	Red:      lipgloss.Color("#f7768e"),
	Peach:    lipgloss.Color("#ff9e64"),
	Yellow:   lipgloss.Color("#e0af68"),
	Green:    lipgloss.Color("#9ece6a"),
	Teal:     lipgloss.Color("#73daca"),
	Blue:     lipgloss.Color("#7aa2f7"),
	Lavender: lipgloss.Color("#bb9af7"),

	BorderFocused:   lipgloss.Color("#7aa2f7"),
	BorderUnfocused: lipgloss.Color("#3b4261"),
	StatusOK:        lipgloss.Color("#9ece6a"),
	StatusError:     lipgloss.Color("#f7768e"),
	StatusWarning:   lipgloss.Color("#e0af68"),
}
