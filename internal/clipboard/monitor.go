package clipboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/sadopc/klip/internal/core/history"
)

// DefaultPollInterval matches the config default poll_interval_ms.
const DefaultPollInterval = 300 * time.Millisecond

// Event signals that the store changed because of a clipboard capture.
type Event struct {
	Entry    history.Entry
	Promoted bool
}

// Monitor polls the clipboard backend and captures changes into the store.
type Monitor struct {
	backend Backend
	store   *history.Store
	every   time.Duration
	events  chan Event
}

// NewMonitor creates a monitor polling b at the given interval.
func NewMonitor(b Backend, store *history.Store, every time.Duration) *Monitor {
	if every <= 0 {
		every = DefaultPollInterval
	}
	return &Monitor{
		backend: b,
		store:   store,
		every:   every,
		events:  make(chan Event, 1),
	}
}

// Events returns the capture event channel. Sends are non-blocking and
// coalesce: the UI rebuilds its whole view per event, so a dropped event
// is made good by the next one. The channel is closed when Run returns.
func (m *Monitor) Events() <-chan Event {
	return m.events
}

// Run polls until ctx is cancelled. Read errors and empty reads are
// skipped; an empty or unavailable clipboard is nothing to capture, not a
// failure. Run owns the events channel and closes it on return.
func (m *Monitor) Run(ctx context.Context) {
	defer close(m.events)

	t := time.NewTicker(m.every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.tick()
		}
	}
}

func (m *Monitor) tick() {
	text, err := m.backend.Read()
	if err != nil {
		slog.Debug("clipboard read failed", "err", err)
		return
	}
	if text == "" {
		return
	}

	entry, op := m.store.Capture(text)
	if op == history.OpSuppressed {
		return
	}

	select {
	case m.events <- Event{Entry: entry, Promoted: op == history.OpPromoted}:
	default:
	}
}
