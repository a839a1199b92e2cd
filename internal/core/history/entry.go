package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single captured clipboard value.
type Entry struct {
	// ID is stable for the lifetime of the entry, including across
	// promotions and across save/load cycles.
	ID string

	// Content is the exact captured text. It is never trimmed or
	// normalized; empty and whitespace-only values are valid.
	Content string

	CapturedAt time.Time
}

func newEntry(content string) Entry {
	return Entry{
		ID:         uuid.NewString(),
		Content:    content,
		CapturedAt: time.Now().UTC(),
	}
}
