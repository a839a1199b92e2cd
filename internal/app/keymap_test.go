package app

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap_CoreBindings(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{"up arrow", k.Up, tea.KeyMsg{Type: tea.KeyUp}},
		{"k", k.Up, keyMsg('k')},
		{"down arrow", k.Down, tea.KeyMsg{Type: tea.KeyDown}},
		{"j", k.Down, keyMsg('j')},
		{"enter", k.Select, tea.KeyMsg{Type: tea.KeyEnter}},
		{"slash", k.Search, keyMsg('/')},
		{"q", k.Quit, keyMsg('q')},
		{"ctrl+c", k.Quit, tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		if !key.Matches(tt.msg, tt.binding) {
			t.Errorf("%s: expected match", tt.name)
		}
	}
}

func TestMerge_OverridesBinding(t *testing.T) {
	k, warnings := DefaultKeyMap().Merge(map[string][]string{
		"quit": {"x", "ctrl+q"},
	})

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if !key.Matches(keyMsg('x'), k.Quit) {
		t.Error("expected x to match quit after override")
	}
	if key.Matches(keyMsg('q'), k.Quit) {
		t.Error("expected q binding to be replaced")
	}
}

func TestMerge_UnknownActionWarns(t *testing.T) {
	k, warnings := DefaultKeyMap().Merge(map[string][]string{
		"teleport": {"t"},
		"up":       {"w"},
	})

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if !key.Matches(keyMsg('w'), k.Up) {
		t.Error("expected valid override to still apply")
	}
	if key.Matches(keyMsg('t'), k.Quit) || key.Matches(keyMsg('t'), k.Up) {
		t.Error("expected unknown action keys to bind nothing")
	}
}

func TestMerge_EmptyKeysLeaveDefault(t *testing.T) {
	k, warnings := DefaultKeyMap().Merge(map[string][]string{
		"delete": {},
	})

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if !key.Matches(keyMsg('d'), k.Delete) {
		t.Error("expected default delete binding retained")
	}
}
