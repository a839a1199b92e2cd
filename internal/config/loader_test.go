package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))

	def := DefaultConfig()
	if cfg.MaxHistory != def.MaxHistory {
		t.Errorf("expected default max_history %d, got %d", def.MaxHistory, cfg.MaxHistory)
	}
	if cfg.PollInterval() != 300*time.Millisecond {
		t.Errorf("expected default poll interval 300ms, got %v", cfg.PollInterval())
	}
	if cfg.Theme != "catppuccin-mocha" {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
	if cfg.QuitOnSelect {
		t.Error("expected stay-resident default")
	}
}

func TestLoadFrom_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
max_history: 50
poll_interval_ms: 100
theme: nord
quit_on_select: true
history_path: /tmp/klip-test.db
keys:
  quit: [q, ctrl+c]
  nonsense-action: [x]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := LoadFrom(path)
	if cfg.MaxHistory != 50 {
		t.Errorf("expected max_history 50, got %d", cfg.MaxHistory)
	}
	if cfg.PollInterval() != 100*time.Millisecond {
		t.Errorf("expected 100ms poll interval, got %v", cfg.PollInterval())
	}
	if cfg.Theme != "nord" {
		t.Errorf("expected theme nord, got %q", cfg.Theme)
	}
	if !cfg.QuitOnSelect {
		t.Error("expected quit_on_select true")
	}
	if cfg.ResolveHistoryPath() != "/tmp/klip-test.db" {
		t.Errorf("expected configured history path, got %q", cfg.ResolveHistoryPath())
	}
	if len(cfg.Keys["quit"]) != 2 {
		t.Errorf("expected 2 quit keys, got %v", cfg.Keys["quit"])
	}
}

func TestLoadFrom_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n -not yaml {{"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := LoadFrom(path)
	if cfg.MaxHistory != DefaultConfig().MaxHistory {
		t.Errorf("expected defaults for malformed file, got %+v", cfg)
	}
}

func TestWatcher_DeliversReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("max_history: 10\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	w := NewWatcher(path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Give the watcher time to arm before mutating the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("max_history: 77\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-w.Reloads():
		if cfg.MaxHistory != 77 {
			t.Errorf("expected reloaded max_history 77, got %d", cfg.MaxHistory)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
