package search

import (
	"testing"

	"github.com/sadopc/klip/internal/core/history"
)

func entries(contents ...string) []history.Entry {
	out := make([]history.Entry, len(contents))
	for i, c := range contents {
		out[i] = history.Entry{ID: c, Content: c}
	}
	return out
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	view := entries("b", "a", "c")

	got := Filter(view, "")
	if len(got) != 3 {
		t.Fatalf("expected all 3 entries, got %d", len(got))
	}
	for i := range view {
		if got[i].ID != view[i].ID {
			t.Errorf("entry %d: expected %q, got %q (order must be preserved)", i, view[i].ID, got[i].ID)
		}
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	view := entries("Hello", "world")

	got := Filter(view, "HELLO")
	if len(got) != 1 || got[0].Content != "Hello" {
		t.Fatalf("expected [Hello], got %v", got)
	}
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	view := entries("xa", "b", "ax", "a")

	got := Filter(view, "a")
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	want := []string{"xa", "ax", "a"}
	for i, w := range want {
		if got[i].Content != w {
			t.Errorf("match %d: expected %q, got %q", i, w, got[i].Content)
		}
	}
}

func TestFilter_MultiLineAndWhitespaceEntries(t *testing.T) {
	view := entries("first\nsecond line", "   ", "")

	got := Filter(view, "second")
	if len(got) != 1 || got[0].Content != "first\nsecond line" {
		t.Fatalf("expected the multi-line entry, got %v", got)
	}

	// A space query is plain substring containment: it matches the
	// whitespace-only entry and the multi-line entry (which contains
	// "second line"), in input order.
	got = Filter(view, " ")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for a space query, got %v", got)
	}
	if got[0].Content != "first\nsecond line" || got[1].Content != "   " {
		t.Fatalf("expected [multi-line, whitespace] in input order, got %v", got)
	}

	// Empty query over empty content must not panic and matches all.
	got = Filter(view, "")
	if len(got) != 3 {
		t.Fatalf("expected identity over view with empty entry, got %d", len(got))
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(entries("a", "b"), "zzz")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}
