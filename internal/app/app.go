package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/klip/internal/clipboard"
	"github.com/sadopc/klip/internal/config"
	"github.com/sadopc/klip/internal/core/history"
	"github.com/sadopc/klip/internal/core/search"
	"github.com/sadopc/klip/internal/transform"
	"github.com/sadopc/klip/internal/ui/components"
	"github.com/sadopc/klip/internal/ui/layout"
	"github.com/sadopc/klip/internal/ui/msgs"
	"github.com/sadopc/klip/internal/ui/panels/list"
	"github.com/sadopc/klip/internal/ui/panels/preview"
	"github.com/sadopc/klip/internal/ui/theme"
)

// Deps wires the app to its collaborators. Codec, Transforms, Events and
// Reloads may be nil; the app degrades to an in-memory session.
type Deps struct {
	Store      *history.Store
	Codec      *history.Codec
	Clipboard  clipboard.Backend
	Transforms *transform.Engine
	Events     <-chan clipboard.Event
	Reloads    <-chan config.Config
}

// App is the root Bubble Tea model.
type App struct {
	list    list.Model
	preview preview.Model

	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast

	store  *history.Store
	codec  *history.Codec
	clip   clipboard.Backend
	engine *transform.Engine

	events  <-chan clipboard.Event
	reloads <-chan config.Config

	cfg          config.Config
	quitOnSelect bool
	keys         KeyMap

	mode           msgs.AppMode
	searchInput    textinput.Model
	previewVisible bool
	layout         layout.PanelLayout

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model.
func New(d Deps, cfg config.Config) App {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	si := textinput.New()
	si.Placeholder = "type to filter"
	si.Prompt = "/"
	si.CharLimit = 128

	keys := DefaultKeyMap()
	if len(cfg.Keys) > 0 {
		var warnings []string
		keys, warnings = keys.Merge(cfg.Keys)
		for _, w := range warnings {
			slog.Warn("config key binding ignored", "reason", w)
		}
	}

	a := App{
		list:    list.New(t, s),
		preview: preview.New(t, s),

		statusBar:      components.NewStatusBar(t, s),
		commandPalette: components.NewCommandPalette(t, s),
		help:           components.NewHelp(t, s),
		toast:          components.NewToast(t, s),

		store:  d.Store,
		codec:  d.Codec,
		clip:   d.Clipboard,
		engine: d.Transforms,

		events:  d.Events,
		reloads: d.Reloads,

		cfg:          cfg,
		quitOnSelect: cfg.QuitOnSelect,
		keys:         keys,

		mode:           msgs.ModeBrowse,
		searchInput:    si,
		previewVisible: true,

		theme:  t,
		styles: s,
	}

	if a.engine != nil {
		a.commandPalette.AddTransforms(a.engine.Names())
	}

	a.list.SetFocused(true)
	a.statusBar.SetMode(a.mode)
	a.refreshView()
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		waitForCapture(a.events),
		waitForReload(a.reloads),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.Calculate(msg.Width, msg.Height, a.previewVisible)
		a.resizePanels()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		if a.commandPalette.Visible {
			var cmd tea.Cmd
			a.commandPalette, cmd = a.commandPalette.Update(msg)
			if !a.commandPalette.Visible {
				a.setMode(msgs.ModeBrowse)
			}
			return a, cmd
		}
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			if !a.help.Visible {
				a.setMode(msgs.ModeBrowse)
			}
			return a, cmd
		}
		if a.mode == msgs.ModeSearch {
			return a.handleSearchKey(msg)
		}
		return a.handleBrowseKey(msg)

	case msgs.EntryCapturedMsg:
		a.refreshView()
		cmds = append(cmds, waitForCapture(a.events), a.saveCmd())
		return a, tea.Batch(cmds...)

	case msgs.SelectEntryMsg:
		return a.selectEntry()

	case msgs.DeleteEntryMsg:
		return a.deleteEntry()

	case msgs.ClearHistoryMsg:
		n := a.store.Clear()
		a.refreshView()
		cmds = append(cmds,
			a.saveCmd(),
			a.toast.Show("History cleared", false, 2*time.Second),
		)
		slog.Info("history cleared", "entries", n)
		return a, tea.Batch(cmds...)

	case msgs.TransformEntryMsg:
		return a.applyTransform(msg.Name)

	case msgs.SaveDoneMsg:
		if msg.Err != nil {
			slog.Error("saving history", "error", msg.Err)
			cmd := a.toast.Show("Save failed: "+msg.Err.Error(), true, 3*time.Second)
			return a, cmd
		}
		return a, nil

	case msgs.ConfigReloadedMsg:
		return a.applyConfig(msg)

	case msgs.SetModeMsg:
		if msg.Mode == msgs.ModeSearch {
			a.enterSearch()
		} else {
			a.setMode(msg.Mode)
		}
		return a, nil

	case msgs.OpenCommandPaletteMsg:
		a.setMode(msgs.ModePalette)
		a.commandPalette.Open()
		return a, nil

	case msgs.ShowHelpMsg:
		a.setMode(msgs.ModeHelp)
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		return a, nil

	case msgs.SwitchThemeMsg:
		return a.handleSwitchTheme(msg)

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.IsError, msg.Duration)
		return a, cmd

	case msgs.StatusMsg:
		a.statusBar.SetMessage(msg.Text)
		if msg.Duration > 0 {
			cmds = append(cmds, tea.Tick(msg.Duration, func(time.Time) tea.Msg {
				return msgs.StatusMsg{Text: ""}
			}))
		}
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.preview, cmd = a.preview.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a App) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		a.list.MoveUp()
		a.syncSelection()
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.list.MoveDown()
		a.syncSelection()
		return a, nil
	case key.Matches(msg, a.keys.Top):
		a.list.MoveTop()
		a.syncSelection()
		return a, nil
	case key.Matches(msg, a.keys.Bottom):
		a.list.MoveBottom()
		a.syncSelection()
		return a, nil
	case key.Matches(msg, a.keys.Select):
		return a.selectEntry()
	case key.Matches(msg, a.keys.Search):
		a.enterSearch()
		return a, nil
	case key.Matches(msg, a.keys.Delete):
		return a.deleteEntry()
	case key.Matches(msg, a.keys.Clear):
		return a.Update(msgs.ClearHistoryMsg{})
	case key.Matches(msg, a.keys.TogglePreview):
		a.previewVisible = !a.previewVisible
		a.layout = layout.Calculate(a.width, a.height, a.previewVisible)
		a.resizePanels()
		return a, nil
	case key.Matches(msg, a.keys.Palette):
		a.setMode(msgs.ModePalette)
		a.commandPalette.Open()
		return a, nil
	case key.Matches(msg, a.keys.Help):
		a.setMode(msgs.ModeHelp)
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		return a, nil
	}
	return a, nil
}

// handleSearchKey routes keys while the query input is active. Arrows
// still move the selection; printable keys edit the query.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Escape):
		a.exitSearch()
		return a, nil
	case key.Matches(msg, a.keys.Select):
		model, cmd := a.selectEntry()
		app, ok := model.(App)
		if !ok {
			return model, cmd
		}
		app.exitSearch()
		return app, cmd
	// Printable keys belong to the query, so movement bindings only
	// fire here on non-rune keys like the arrows.
	case msg.Type != tea.KeyRunes && key.Matches(msg, a.keys.Up):
		a.list.MoveUp()
		a.syncSelection()
		return a, nil
	case msg.Type != tea.KeyRunes && key.Matches(msg, a.keys.Down):
		a.list.MoveDown()
		a.syncSelection()
		return a, nil
	case msg.String() == "ctrl+c":
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.refreshView()
	return a, cmd
}

func (a *App) enterSearch() {
	a.setMode(msgs.ModeSearch)
	a.searchInput.SetValue("")
	a.searchInput.Focus()
	a.refreshView()
}

// exitSearch discards the query and restores the full history view.
func (a *App) exitSearch() {
	a.searchInput.Blur()
	a.searchInput.SetValue("")
	a.setMode(msgs.ModeBrowse)
	a.refreshView()
}

func (a App) selectEntry() (tea.Model, tea.Cmd) {
	e, ok := a.list.Selected()
	if !ok {
		cmd := a.toast.Show("Nothing to copy", true, 2*time.Second)
		return a, cmd
	}

	if err := a.clip.Write(e.Content); err != nil {
		slog.Error("writing clipboard", "error", err)
		cmd := a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}

	// Promote immediately rather than waiting for the next poll to
	// observe our own write.
	a.store.Capture(e.Content)
	a.refreshView()

	if a.quitOnSelect {
		return a, tea.Quit
	}

	cmds := []tea.Cmd{
		a.saveCmd(),
		a.toast.Show("Copied to clipboard", false, 2*time.Second),
	}
	return a, tea.Batch(cmds...)
}

func (a App) deleteEntry() (tea.Model, tea.Cmd) {
	e, ok := a.list.Selected()
	if !ok {
		cmd := a.toast.Show("Nothing to delete", true, 2*time.Second)
		return a, cmd
	}

	if err := a.store.Remove(e.ID); err != nil {
		if !errors.Is(err, history.ErrNotFound) {
			slog.Error("removing entry", "error", err)
		}
		a.refreshView()
		return a, nil
	}

	a.refreshView()
	cmds := []tea.Cmd{
		a.saveCmd(),
		a.toast.Show("Entry deleted", false, 2*time.Second),
	}
	return a, tea.Batch(cmds...)
}

func (a App) applyTransform(name string) (tea.Model, tea.Cmd) {
	if a.engine == nil {
		cmd := a.toast.Show("Transforms unavailable", true, 2*time.Second)
		return a, cmd
	}
	e, ok := a.list.Selected()
	if !ok {
		cmd := a.toast.Show("Nothing to transform", true, 2*time.Second)
		return a, cmd
	}

	out, err := a.engine.Apply(name, e.Content)
	if err != nil {
		cmd := a.toast.Show("Transform failed: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}

	a.store.Capture(out)
	a.refreshView()
	cmds := []tea.Cmd{
		a.saveCmd(),
		a.toast.Show("Transformed: "+name, false, 2*time.Second),
	}
	return a, tea.Batch(cmds...)
}

func (a App) handleSwitchTheme(msg msgs.SwitchThemeMsg) (tea.Model, tea.Cmd) {
	if msg.Name == "" {
		a.commandPalette.OpenThemePicker(theme.Names())
		a.setMode(msgs.ModePalette)
		return a, nil
	}

	t := theme.Resolve(msg.Name)
	a.applyTheme(t)

	cmd := a.toast.Show("Theme: "+t.Name, false, 2*time.Second)
	return a, cmd
}

func (a *App) applyTheme(t theme.Theme) {
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s

	a.list.SetTheme(t, s)
	a.preview.SetTheme(t, s)
	a.statusBar.SetTheme(t, s)
	a.commandPalette.SetTheme(t, s)
	a.help.SetTheme(t, s)
	a.toast.SetTheme(t, s)

	a.refreshView()
	a.resizePanels()
}

func (a App) applyConfig(msg msgs.ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	a.quitOnSelect = msg.QuitOnSelect

	keys := DefaultKeyMap()
	if len(msg.Keys) > 0 {
		var warnings []string
		keys, warnings = keys.Merge(msg.Keys)
		for _, w := range warnings {
			slog.Warn("config key binding ignored", "reason", w)
		}
	}
	a.keys = keys

	if msg.Theme != "" && msg.Theme != a.theme.Name {
		a.applyTheme(theme.Resolve(msg.Theme))
	}

	cmds := []tea.Cmd{
		waitForReload(a.reloads),
		a.toast.Show("Config reloaded", false, 2*time.Second),
	}
	slog.Info("config reloaded", "theme", msg.Theme, "quit_on_select", msg.QuitOnSelect)
	return a, tea.Batch(cmds...)
}

func (a *App) setMode(m msgs.AppMode) {
	a.mode = m
	a.statusBar.SetMode(m)
}

// refreshView rebuilds the visible entry list from the store and the
// current query. Selection follows the entry ID across rebuilds.
func (a *App) refreshView() {
	entries := a.store.List()

	query := ""
	if a.mode == msgs.ModeSearch {
		query = a.searchInput.Value()
	}
	view := search.Filter(entries, query)

	a.list.SetView(view)
	if a.mode == msgs.ModeSearch {
		a.list.SetTitle("History (filtered)")
	} else {
		a.list.SetTitle("History")
	}

	a.statusBar.SetCounts(len(view), len(entries))
	a.syncSelection()
}

func (a *App) syncSelection() {
	e, ok := a.list.Selected()
	a.preview.SetEntry(e, ok)
	if ok {
		a.statusBar.SetEntrySize(int64(len(e.Content)))
	} else {
		a.statusBar.SetEntrySize(0)
	}
}

func (a *App) resizePanels() {
	l := a.layout
	if l.SinglePanel {
		a.list.SetSize(l.Width, l.ContentHeight)
	} else {
		a.list.SetSize(l.ListWidth, l.ContentHeight)
		a.preview.SetSize(l.PreviewWidth, l.ContentHeight)
	}
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var panels string
	if a.layout.SinglePanel {
		panels = a.list.View()
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, a.list.View(), a.preview.View())
	}

	var bottom string
	if a.mode == msgs.ModeSearch {
		bottom = a.styles.SearchBar.Width(a.width).Render(a.searchInput.View())
	} else {
		bottom = a.statusBar.View()
	}

	main := lipgloss.JoinVertical(lipgloss.Left, panels, bottom)

	if a.commandPalette.Visible {
		main = overlayCenter(main, a.commandPalette.View(), a.width, a.height)
	}
	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func waitForCapture(ch <-chan clipboard.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return msgs.EntryCapturedMsg{Entry: ev.Entry, Promoted: ev.Promoted}
	}
}

func waitForReload(ch <-chan config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return msgs.ConfigReloadedMsg{
			MaxHistory:   cfg.MaxHistory,
			Theme:        cfg.Theme,
			QuitOnSelect: cfg.QuitOnSelect,
			Keys:         cfg.Keys,
		}
	}
}

// saveCmd persists the current history snapshot in the background.
func (a App) saveCmd() tea.Cmd {
	if a.codec == nil {
		return nil
	}
	codec, store := a.codec, a.store
	entries, gen := store.Snapshot()
	return func() tea.Msg {
		err := codec.Save(entries)
		if err == nil {
			store.MarkSaved(gen)
		}
		return msgs.SaveDoneMsg{Err: err}
	}
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#1e1e2e")),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
