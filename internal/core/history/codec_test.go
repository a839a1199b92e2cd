package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history.db")
}

func TestCodec_RoundTrip(t *testing.T) {
	path := tempDBPath(t)

	entries := []Entry{
		{ID: "1", Content: "plain text", CapturedAt: time.Now().UTC().Truncate(time.Microsecond)},
		{ID: "2", Content: "", CapturedAt: time.Now().UTC().Truncate(time.Microsecond)},
		{ID: "3", Content: "  \t\n  ", CapturedAt: time.Now().UTC().Truncate(time.Microsecond)},
		{ID: "4", Content: "multi\nline\r\ncontent", CapturedAt: time.Now().UTC().Truncate(time.Microsecond)},
		{ID: "5", Content: "quotes ' \" and a NUL \x00 byte", CapturedAt: time.Now().UTC().Truncate(time.Microsecond)},
	}

	c, err := OpenCodec(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := c.Save(entries); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	c.Close()

	c, err = OpenCodec(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer c.Close()

	got, err := c.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}
	for i := range entries {
		if got[i].ID != entries[i].ID {
			t.Errorf("entry %d: expected ID %q, got %q", i, entries[i].ID, got[i].ID)
		}
		if got[i].Content != entries[i].Content {
			t.Errorf("entry %d: content not byte-identical: want %q, got %q", i, entries[i].Content, got[i].Content)
		}
		if !got[i].CapturedAt.Equal(entries[i].CapturedAt) {
			t.Errorf("entry %d: expected CapturedAt %v, got %v", i, entries[i].CapturedAt, got[i].CapturedAt)
		}
	}
}

func TestCodec_SaveReplacesSnapshot(t *testing.T) {
	path := tempDBPath(t)

	c, err := OpenCodec(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer c.Close()

	if err := c.Save([]Entry{{ID: "1", Content: "old", CapturedAt: time.Now()}}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := c.Save([]Entry{
		{ID: "2", Content: "new-head", CapturedAt: time.Now()},
		{ID: "3", Content: "new-tail", CapturedAt: time.Now()},
	}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := c.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected snapshot to be replaced, got %d entries", len(got))
	}
	if got[0].Content != "new-head" || got[1].Content != "new-tail" {
		t.Errorf("expected [new-head new-tail], got [%q %q]", got[0].Content, got[1].Content)
	}
}

func TestCodec_MissingFileIsEmpty(t *testing.T) {
	path := tempDBPath(t)

	c, err := OpenCodec(path)
	if err != nil {
		t.Fatalf("open of missing file should create it: %v", err)
	}
	defer c.Close()

	got, err := c.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history, got %d entries", len(got))
	}
}

func TestCodec_GarbageFileIsFormatError(t *testing.T) {
	path := tempDBPath(t)
	if err := os.WriteFile(path, []byte("this is not a database\n"), 0o644); err != nil {
		t.Fatalf("writing garbage file: %v", err)
	}

	c, err := OpenCodec(path)
	if err == nil {
		c.Close()
		t.Fatal("expected open of garbage file to fail")
	}
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestCodec_UnsupportedVersionIsFormatError(t *testing.T) {
	path := tempDBPath(t)

	c, err := OpenCodec(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := c.db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("bumping version: %v", err)
	}
	c.Close()

	_, err = OpenCodec(path)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for unknown schema version, got %v", err)
	}
}

func TestCodec_StoreRoundTrip(t *testing.T) {
	path := tempDBPath(t)

	s := NewStore(10)
	s.Capture("a")
	s.Capture("b")
	s.Capture("a") // promote

	c, err := OpenCodec(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer c.Close()

	entries, gen := s.Snapshot()
	if err := c.Save(entries); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	s.MarkSaved(gen)

	loaded, err := c.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	restored := NewStoreFrom(loaded, 10)

	got := contents(restored.List())
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected restored history [a b], got %v", got)
	}
}
