package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $TILEGRID_CONFIG)")
	kind := flag.String("kind", "", "generator override: maze, rooms or caves")
	seed := flag.Uint64("seed", 0, "seed override (0 = keep config)")
	sound := flag.Bool("sound", true, "enable audio feedback")
	logPath := flag.String("log", "gridview.log", "log file (empty = discard)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *kind != "" {
		cfg.Map.Kind = *kind
	}
	if *seed != 0 {
		cfg.Map.Seed = *seed
	}
	cfg.Sound = cfg.Sound && *sound
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to tcell, logs go to a file
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "gridview ", log.LstdFlags|log.Lmicroseconds)

	viewer, err := NewViewer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
