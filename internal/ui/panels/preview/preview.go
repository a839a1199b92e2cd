// Package preview renders the full content of the selected entry.
package preview

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/pretty"

	"github.com/sadopc/klip/internal/core/history"
	"github.com/sadopc/klip/internal/ui/theme"
)

// Model displays the selected entry's content with syntax highlighting.
type Model struct {
	viewport viewport.Model
	styles   theme.Styles
	width    int
	height   int
	focused  bool
	hasEntry bool
	raw      string
}

// New creates a new preview panel.
func New(t theme.Theme, s theme.Styles) Model {
	vp := viewport.New(0, 0)
	return Model{
		viewport: vp,
		styles:   s,
	}
}

// SetTheme applies a new theme.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.styles = s
}

// SetEntry sets the previewed entry.
func (m *Model) SetEntry(e history.Entry, ok bool) {
	if !ok {
		m.hasEntry = false
		m.raw = ""
		m.viewport.SetContent("")
		return
	}
	if m.hasEntry && m.raw == e.Content {
		return
	}
	m.hasEntry = true
	m.raw = e.Content
	m.renderContent()
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	innerW := w - 2
	if innerW < 1 {
		innerW = 1
	}
	innerH := h - 4 // border + title
	if innerH < 1 {
		innerH = 1
	}
	m.viewport.Width = innerW
	m.viewport.Height = innerH
	if m.hasEntry {
		m.renderContent()
	}
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

func (m *Model) renderContent() {
	src := m.raw
	lexerName := detectLexer(src)
	if lexerName == "json" {
		src = string(pretty.Pretty([]byte(src)))
	}
	m.viewport.SetContent(highlight(src, lexerName))
	m.viewport.GotoTop()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
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

	title := m.styles.Title.Render("Preview")
	var body string
	if !m.hasEntry {
		body = m.styles.Muted.Render("  No entry selected")
	} else {
		body = m.viewport.View()
	}

	return border.
		Width(innerW).
		Height(innerH).
		Render(title + "\n\n" + body)
}

// detectLexer guesses a lexer from the content itself; clipboard text
// carries no content type.
func detectLexer(content string) string {
	trimmed := strings.TrimSpace(content)
	switch {
	case strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "["):
		return "json"
	case strings.HasPrefix(trimmed, "<?xml") || strings.HasPrefix(trimmed, "<"):
		return "xml"
	default:
		return ""
	}
}

func highlight(src, lexerName string) string {
	if lexerName == "" {
		return src
	}

	lexer := lexers.Get(lexerName)
	if lexer == nil {
		return src
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return src
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return buf.String()
}
