package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/klip/internal/config"
	"github.com/sadopc/klip/internal/core/history"
	"github.com/sadopc/klip/internal/logging"
	"github.com/sadopc/klip/internal/ui/panels/list"
)

func listCmd() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	limitFlag := fs.Int("n", 0, "Print at most n entries (0 = all)")
	jsonFlag := fs.Bool("json", false, "Output entries as JSON")
	fullFlag := fs.Bool("full", false, "Print full entry content instead of one-line summaries")
	configFlag := fs.String("config", "", "Path to a config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: klip list [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Print clipboard history to stdout, most recent first.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  klip list\n")
		fmt.Fprintf(os.Stderr, "  klip list -n 10\n")
		fmt.Fprintf(os.Stderr, "  klip list --json | jq '.[0].content'\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	cfg, _ := loadConfig(*configFlag)
	logging.Setup(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	entries, err := loadEntries(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := printEntries(os.Stdout, entries, *limitFlag, *jsonFlag, *fullFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadEntries reads the persisted history without going through a store.
func loadEntries(cfg config.Config) ([]history.Entry, error) {
	path := cfg.ResolveHistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	codec, err := history.OpenCodec(path)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer codec.Close()

	entries, err := codec.Load()
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return entries, nil
}

type listedEntry struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CapturedAt time.Time `json:"captured_at"`
}

func printEntries(w io.Writer, entries []history.Entry, limit int, asJSON, full bool) error {
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	if asJSON {
		out := make([]listedEntry, len(entries))
		for i, e := range entries {
			out[i] = listedEntry{ID: e.ID, Content: e.Content, CapturedAt: e.CapturedAt}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, e := range entries {
		if full {
			fmt.Fprintf(w, "--- %d  %s\n", i+1, e.CapturedAt.Format(time.RFC3339))
			fmt.Fprintln(w, e.Content)
			continue
		}
		fmt.Fprintf(w, "%3d  %s\n", i+1, list.Headline(e.Content, 72))
	}
	return nil
}
