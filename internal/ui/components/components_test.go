package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/klip/internal/ui/msgs"
	"github.com/sadopc/klip/internal/ui/theme"
)

// helpers

func testTheme() theme.Theme {
	return theme.Default()
}

func testStyles() theme.Styles {
	return theme.NewStyles(theme.Default())
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Toast tests
// ─────────────────────────────────────────────────────────────────────────────

func TestToast_ShowAndDismiss(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	if toast.Visible {
		t.Fatal("toast should start hidden")
	}

	cmd := toast.Show("saved", false, 50*time.Millisecond)
	if !toast.Visible {
		t.Fatal("toast should be visible after Show")
	}
	if cmd == nil {
		t.Fatal("Show should return an auto-dismiss cmd")
	}
	if !strings.Contains(toast.View(), "saved") {
		t.Errorf("expected view to contain message, got %q", toast.View())
	}

	toast, _ = toast.Update(toastDismissMsg{})
	if toast.Visible {
		t.Error("toast should hide on dismiss msg")
	}
	if toast.View() != "" {
		t.Errorf("hidden toast should render empty, got %q", toast.View())
	}
}

func TestToast_ZeroDurationUsesDefault(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	toast.Show("x", true, 0)
	if toast.duration != 3*time.Second {
		t.Errorf("expected default duration, got %v", toast.duration)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// StatusBar tests
// ─────────────────────────────────────────────────────────────────────────────

func TestStatusBar_ShowsCountsAndMode(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetWidth(100)
	sb.SetCounts(3, 10)
	sb.SetMode(msgs.ModeSearch)

	view := sb.View()
	if !strings.Contains(view, "3/10 entries") {
		t.Errorf("expected filtered count in view, got %q", view)
	}
	if !strings.Contains(view, "[SEARCH]") {
		t.Errorf("expected mode indicator, got %q", view)
	}
}

func TestStatusBar_MessageReplacesCounts(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetWidth(100)
	sb.SetCounts(5, 5)
	sb.SetMessage("copied to clipboard")

	view := sb.View()
	if !strings.Contains(view, "copied to clipboard") {
		t.Errorf("expected message in view, got %q", view)
	}
	if strings.Contains(view, "entries") {
		t.Errorf("message should replace the counts, got %q", view)
	}
}

func TestStatusBar_EqualCountsCollapse(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetWidth(100)
	sb.SetCounts(7, 7)

	if view := sb.View(); !strings.Contains(view, "7 entries") || strings.Contains(view, "7/7") {
		t.Errorf("expected collapsed count, got %q", view)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// CommandPalette tests
// ─────────────────────────────────────────────────────────────────────────────

func TestCommandPalette_OpenAndFilter(t *testing.T) {
	cp := NewCommandPalette(testTheme(), testStyles())
	cp.Open()
	if !cp.Visible {
		t.Fatal("palette should be visible after Open")
	}

	cp, _ = cp.Update(keyMsg("clear"))
	if len(cp.filtered) == 0 {
		t.Fatal("expected fuzzy matches for 'clear'")
	}
	if cp.filtered[0].Name != "Clear History" {
		t.Errorf("expected 'Clear History' as top match, got %q", cp.filtered[0].Name)
	}
}

func TestCommandPalette_EnterDispatchesSelection(t *testing.T) {
	cp := NewCommandPalette(testTheme(), testStyles())
	cp.Open()
	cp, _ = cp.Update(keyMsg("clear"))

	cp, cmd := cp.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cp.Visible {
		t.Error("palette should close on enter")
	}
	if cmd == nil {
		t.Fatal("expected a dispatch cmd")
	}
	if _, ok := cmd().(msgs.ClearHistoryMsg); !ok {
		t.Errorf("expected ClearHistoryMsg to be dispatched, got %#v", cmd())
	}
}

func TestCommandPalette_EscCloses(t *testing.T) {
	cp := NewCommandPalette(testTheme(), testStyles())
	cp.Open()

	cp, cmd := cp.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cp.Visible {
		t.Error("palette should close on esc")
	}
	if cmd != nil {
		t.Errorf("expected nil cmd on esc, got %#v", cmd())
	}
}

func TestCommandPalette_AddTransforms(t *testing.T) {
	cp := NewCommandPalette(testTheme(), testStyles())
	cp.AddTransforms([]string{"trim", "uppercase"})
	cp.Open()

	var names []string
	for _, c := range cp.filtered {
		names = append(names, c.Name)
	}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "Transform: trim") || !strings.Contains(joined, "Transform: uppercase") {
		t.Errorf("expected transform commands, got %s", joined)
	}
}

func TestCommandPalette_ThemePicker(t *testing.T) {
	cp := NewCommandPalette(testTheme(), testStyles())
	cp.OpenThemePicker([]string{"Nord", "Dracula"})

	if len(cp.filtered) != 2 {
		t.Fatalf("expected 2 theme entries, got %d", len(cp.filtered))
	}

	cp, cmd := cp.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected dispatch cmd")
	}
	if m, ok := cmd().(msgs.SwitchThemeMsg); !ok || m.Name != "Nord" {
		t.Errorf("expected SwitchThemeMsg{Nord} from picker, got %#v", cmd())
	}
	_ = cp
}

// ─────────────────────────────────────────────────────────────────────────────
// Help tests
// ─────────────────────────────────────────────────────────────────────────────

func TestHelp_ToggleAndClose(t *testing.T) {
	h := NewHelp(testTheme(), testStyles())
	h.SetSize(100, 40)

	h.Toggle()
	if !h.Visible {
		t.Fatal("help should be visible after toggle")
	}
	if !strings.Contains(h.View(), "Keyboard Shortcuts") {
		t.Error("expected help title in view")
	}

	h, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if h.Visible {
		t.Error("help should close on esc")
	}
	if cmd == nil {
		t.Fatal("expected mode reset cmd on close")
	}
}
