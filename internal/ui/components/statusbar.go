package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/klip/internal/ui/msgs"
	"github.com/sadopc/klip/internal/ui/theme"
)

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	entryCount int
	totalCount int
	entrySize  int64
	mode       msgs.AppMode
	message    string
	width      int
	theme      theme.Theme
	styles     theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeBrowse,
	}
}

// SetTheme applies a new theme.
func (m *StatusBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// SetCounts sets the visible/total entry counts shown on the left.
func (m *StatusBar) SetCounts(visible, total int) {
	m.entryCount = visible
	m.totalCount = total
}

// SetEntrySize sets the size of the selected entry.
func (m *StatusBar) SetEntrySize(size int64) {
	m.entrySize = size
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, lipgloss.NewStyle().
			Foreground(m.theme.Text).
			Background(m.theme.Surface).
			Render(m.message))
	} else {
		count := fmt.Sprintf("%d entries", m.totalCount)
		if m.entryCount != m.totalCount {
			count = fmt.Sprintf("%d/%d entries", m.entryCount, m.totalCount)
		}
		leftParts = append(leftParts, lipgloss.NewStyle().
			Foreground(m.theme.Subtext).
			Background(m.theme.Surface).
			Render(count))

		if m.entrySize > 0 {
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.Muted).
				Background(m.theme.Surface).
				Render(humanize.IBytes(uint64(m.entrySize))))
		}
	}
	left := strings.Join(leftParts, " │ ")

	modeStr := lipgloss.NewStyle().
		Foreground(m.theme.Mauve).
		Background(m.theme.Surface).
		Bold(true).
		Render("[" + m.mode.String() + "]")

	hint := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Background(m.theme.Surface).
		Render("?:help  ctrl+k:palette  /:search")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		gap := m.width - totalContent
		if gap < 1 {
			gap = 1
		}
		return barStyle.Render(" " + left + strings.Repeat(" ", gap) + modeStr + " " + hint)
	}

	remaining := m.width - totalContent - 2
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}
