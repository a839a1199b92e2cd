// Package list renders the clipboard history and owns the cursor.
package list

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/klip/internal/core/history"
	"github.com/sadopc/klip/internal/ui/theme"
)

// Model is the history list panel. It displays the current view (full
// history or search matches) and tracks the selection.
type Model struct {
	view   []history.Entry
	cursor int

	width   int
	height  int
	focused bool
	title   string

	theme  theme.Theme
	styles theme.Styles
}

// New creates a new list model.
func New(t theme.Theme, s theme.Styles) Model {
	return Model{
		theme:  t,
		styles: s,
		title:  "History",
	}
}

// SetTheme applies a new theme.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// SetView replaces the displayed entries, relocating the cursor so it
// stays on the same entry when that entry survives the rebuild. The
// cursor is clamped into range otherwise.
func (m *Model) SetView(view []history.Entry) {
	prev := m.SelectedID()
	m.view = view

	if prev != "" {
		for i, e := range view {
			if e.ID == prev {
				m.cursor = i
				return
			}
		}
	}
	m.clampCursor()
}

// SetTitle sets the panel title ("History" or "Search: query").
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (history.Entry, bool) {
	if len(m.view) == 0 || m.cursor < 0 || m.cursor >= len(m.view) {
		return history.Entry{}, false
	}
	return m.view[m.cursor], true
}

// SelectedID returns the ID of the entry under the cursor, or "".
func (m Model) SelectedID() string {
	if e, ok := m.Selected(); ok {
		return e.ID
	}
	return ""
}

// Cursor returns the cursor index.
func (m Model) Cursor() int {
	return m.cursor
}

// Len returns the number of entries in the current view.
func (m Model) Len() int {
	return len(m.view)
}

// MoveUp moves the cursor up one entry, clamped at the top.
func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down one entry, clamped at the bottom.
func (m *Model) MoveDown() {
	if m.cursor < len(m.view)-1 {
		m.cursor++
	}
}

// MoveTop and MoveBottom jump to the ends of the view.
func (m *Model) MoveTop() { m.cursor = 0 }

func (m *Model) MoveBottom() {
	m.cursor = len(m.view) - 1
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.MoveDown()
		case "k", "up":
			m.MoveUp()
		case "g":
			m.MoveTop()
		case "G":
			m.MoveBottom()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := m.width - 2
	if innerW < 1 {
		innerW = 1
	}
	innerH := m.height - 2
	if innerH < 1 {
		innerH = 1
	}

	var lines []string
	lines = append(lines, m.styles.Title.Render(m.title))
	lines = append(lines, "")

	if len(m.view) == 0 {
		lines = append(lines, m.styles.Muted.Render("  Nothing here yet"))
	} else {
		start, end := m.visibleRange(innerH - 2)
		for i := start; i < end; i++ {
			lines = append(lines, m.renderEntry(m.view[i], i == m.cursor, innerW))
		}
	}

	content := fitHeight(strings.Join(lines, "\n"), innerH)

	return border.
		Width(innerW).
		Height(innerH).
		Render(content)
}

// visibleRange scrolls the window so the cursor stays on screen.
func (m Model) visibleRange(rows int) (int, int) {
	if rows < 1 {
		rows = 1
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(m.view) {
		end = len(m.view)
	}
	return start, end
}

func (m Model) renderEntry(e history.Entry, isCursor bool, maxWidth int) string {
	age := m.styles.ListTime.Render(humanize.Time(e.CapturedAt))
	label := Headline(e.Content, maxWidth-lipgloss.Width(age)-3)

	var body string
	if strings.TrimSpace(e.Content) == "" {
		body = m.styles.Whitespace.Render(label)
	} else {
		body = m.styles.ListItem.Render(label)
	}

	line := " " + body + " " + age
	if isCursor {
		plain := " " + label + " " + humanize.Time(e.CapturedAt)
		return m.styles.Cursor.Width(maxWidth).Render(truncate(plain, maxWidth))
	}
	return line
}

// Headline condenses entry content to a single displayable line.
// Whitespace-only and empty entries get a quoted placeholder so they stay
// visible and selectable; multi-line content shows its first non-empty
// line plus a line count.
func Headline(content string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}

	if strings.TrimSpace(content) == "" {
		quoted := strconv.Quote(content)
		return truncate(fmt.Sprintf("(whitespace: %s)", quoted), maxWidth)
	}

	lines := strings.Split(content, "\n")
	first := ""
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			first = strings.TrimSpace(l)
			break
		}
	}
	if len(lines) > 1 {
		first = fmt.Sprintf("%s (%d lines)", first, len(lines))
	}
	return truncate(first, maxWidth)
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func fitHeight(content string, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
