package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/klip/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

type toastDismissMsg struct{}

// Toast is a transient notice rendered in the top-right corner, used
// for copy confirmations and clipboard failures. It clears itself
// after the duration passed to Show.
type Toast struct {
	Visible  bool
	text     string
	isError  bool
	duration time.Duration
	styles   theme.Styles
}

func NewToast(t theme.Theme, s theme.Styles) Toast {
	return Toast{
		styles:   s,
		duration: defaultToastDuration,
	}
}

// SetTheme applies a new theme.
func (m *Toast) SetTheme(t theme.Theme, s theme.Styles) {
	m.styles = s
}

// Show replaces any visible notice and schedules its dismissal. A
// non-positive duration falls back to the default.
func (m *Toast) Show(text string, isError bool, duration time.Duration) tea.Cmd {
	m.Visible = true
	m.text = text
	m.isError = isError
	if duration > 0 {
		m.duration = duration
	} else {
		m.duration = defaultToastDuration
	}
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return toastDismissMsg{}
	})
}

// Init implements tea.Model.
func (m Toast) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	switch msg.(type) {
	case toastDismissMsg:
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the notice, success-tinted or error-tinted.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}
	style := m.styles.ToastInfo
	if m.isError {
		style = m.styles.ToastError
	}
	return style.Render(m.text)
}
