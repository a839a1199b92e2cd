package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/klip/internal/app"
	"github.com/sadopc/klip/internal/clipboard"
	"github.com/sadopc/klip/internal/config"
	"github.com/sadopc/klip/internal/core/history"
	"github.com/sadopc/klip/internal/logging"
	"github.com/sadopc/klip/internal/transform"
	"github.com/sadopc/klip/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "list":
			listCmd()
			return
		case "clear":
			clearCmd()
			return
		case "version":
			fmt.Printf("klip %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `klip - A clipboard history manager for the terminal

Usage:
  klip [flags]                     Launch TUI (interactive mode)
  klip <command> [args] [flags]    Run a subcommand

Commands:
  list      Print clipboard history to stdout
  clear     Wipe the clipboard history
  version   Print version information
  help      Show this help message

Flags:
  --config <path>   Path to a config file (default ~/.config/klip/config.yaml),
                    honored by the TUI and by list/clear
  --version         Print version and exit

Run 'klip <command> --help' for more information about a command.
`)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	configFlag := flag.String("config", "", "Path to a config file")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("klip %s (%s) built %s\n", version.Version, version.Commit, version.Date)
		os.Exit(0)
	}

	cfg, configPath := loadConfig(*configFlag)

	closer, err := logging.SetupFile(logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	} else {
		defer closer.Close()
	}

	codec := openHistory(cfg.ResolveHistoryPath())
	var entries []history.Entry
	if codec != nil {
		defer codec.Close()
		entries, err = codec.Load()
		if err != nil {
			slog.Warn("loading history", "error", err)
			entries = nil
		}
	}
	store := history.NewStoreFrom(entries, cfg.MaxHistory)

	backend := clipboard.NewSystem()
	monitor := clipboard.NewMonitor(backend, store, cfg.PollInterval())
	watcher := config.NewWatcher(configPath)

	engine := transform.NewEngine(2 * time.Second)
	for _, name := range engine.LoadScripts(filepath.Join(config.Dir(), "transforms")) {
		slog.Warn("skipping transform script", "name", name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	monitorDone := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(monitorDone)
	}()
	go watcher.Run(ctx)

	model := app.New(app.Deps{
		Store:      store,
		Codec:      codec,
		Clipboard:  backend,
		Transforms: engine,
		Events:     monitor.Events(),
		Reloads:    watcher.Reloads(),
	}, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, runErr := p.Run()
	cancel()
	<-monitorDone

	// Final save catches captures the event loop never observed.
	if codec != nil {
		if err := codec.Save(store.List()); err != nil {
			slog.Error("saving history on exit", "error", err)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig reads the config file at path, falling back to the default
// location when path is empty. Every subcommand honors the same -config
// flag the TUI does.
func loadConfig(path string) (config.Config, string) {
	if path == "" {
		path = config.Path()
	}
	return config.LoadFrom(path), path
}

// openHistory opens the history file, moving an unreadable one aside so
// a fresh session can start. Returns nil when persistence is unavailable.
func openHistory(path string) *history.Codec {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		slog.Warn("creating data directory", "error", err)
		return nil
	}

	codec, err := history.OpenCodec(path)
	if err == nil {
		return codec
	}

	if errors.Is(err, history.ErrFormat) {
		backup := path + ".corrupt"
		slog.Warn("history file unreadable, moving aside", "path", path, "backup", backup)
		fmt.Fprintf(os.Stderr, "Warning: history file is unreadable; moved to %s\n", backup)
		if renameErr := os.Rename(path, backup); renameErr != nil {
			slog.Error("backing up history file", "error", renameErr)
			return nil
		}
		codec, err = history.OpenCodec(path)
		if err == nil {
			return codec
		}
	}

	slog.Error("opening history file", "error", err)
	return nil
}
