// Package msgs holds the Bubble Tea messages shared between the app and
// its components.
package msgs

import (
	"time"

	"github.com/sadopc/klip/internal/core/history"
)

// AppMode represents the current input mode.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeSearch
	ModePalette
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "BROWSE"
	case ModeSearch:
		return "SEARCH"
	case ModePalette:
		return "PALETTE"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// EntryCapturedMsg is emitted when the clipboard monitor captured a change.
type EntryCapturedMsg struct {
	Entry    history.Entry
	Promoted bool
}

// SelectEntryMsg pastes the selected entry back to the clipboard.
type SelectEntryMsg struct{}

// DeleteEntryMsg removes the selected entry from the history.
type DeleteEntryMsg struct{}

// ClearHistoryMsg wipes the whole history.
type ClearHistoryMsg struct{}

// TransformEntryMsg applies a named transform to the selected entry and
// captures the result.
type TransformEntryMsg struct {
	Name string
}

// SaveDoneMsg reports the outcome of a background history save.
type SaveDoneMsg struct {
	Err error
}

// ConfigReloadedMsg carries a freshly loaded config after a file change.
type ConfigReloadedMsg struct {
	MaxHistory   int
	Theme        string
	QuitOnSelect bool
	Keys         map[string][]string
}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// SwitchThemeMsg requests switching to a named theme.
type SwitchThemeMsg struct {
	Name string
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}
