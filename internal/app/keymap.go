package app

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings the controller matches against in browse
// mode. Search mode only honors Up, Down, Select and Escape; everything
// else types into the query.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Top           key.Binding
	Bottom        key.Binding
	Select        key.Binding
	Search        key.Binding
	Escape        key.Binding
	Delete        key.Binding
	Clear         key.Binding
	TogglePreview key.Binding
	Palette       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous entry"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next entry"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first entry"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last entry"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy to clipboard"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete entry"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear history"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle preview"),
		),
		Palette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Merge overrides the default bindings with user-configured keys. The
// returned warnings name actions that do not exist; the bindings for
// those are left untouched.
func (k KeyMap) Merge(overrides map[string][]string) (KeyMap, []string) {
	targets := map[string]*key.Binding{
		"up":      &k.Up,
		"down":    &k.Down,
		"top":     &k.Top,
		"bottom":  &k.Bottom,
		"select":  &k.Select,
		"search":  &k.Search,
		"escape":  &k.Escape,
		"delete":  &k.Delete,
		"clear":   &k.Clear,
		"preview": &k.TogglePreview,
		"palette": &k.Palette,
		"help":    &k.Help,
		"quit":    &k.Quit,
	}

	actions := make([]string, 0, len(overrides))
	for action := range overrides {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var warnings []string
	for _, action := range actions {
		keys := overrides[action]
		binding, ok := targets[action]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key action %q", action))
			continue
		}
		if len(keys) == 0 {
			continue
		}
		binding.SetKeys(keys...)
	}
	return k, warnings
}
