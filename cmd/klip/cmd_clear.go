package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sadopc/klip/internal/core/history"
	"github.com/sadopc/klip/internal/logging"
)

func clearCmd() {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	forceFlag := fs.Bool("force", false, "Skip the confirmation prompt")
	configFlag := fs.String("config", "", "Path to a config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: klip clear [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Wipe the persisted clipboard history.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	cfg, _ := loadConfig(*configFlag)
	logging.Setup(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	path := cfg.ResolveHistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("History is already empty.")
		return
	}

	codec, err := history.OpenCodec(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	defer codec.Close()

	entries, err := codec.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("History is already empty.")
		return
	}

	if !*forceFlag {
		fmt.Printf("Clear %d entries? [y/N] ", len(entries))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := codec.Save(nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared %d entries.\n", len(entries))
}
