package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"ftracker/internal/config"
	"ftracker/internal/service"
	"ftracker/internal/tui"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer) error {
	// Load configuration, falling back to the demonstration packages
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		// Leave an editable example behind; reports go out either way
		if err := config.CreateExample(); err != nil {
			log.Printf("creating example config: %v", err)
		}
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return fmt.Errorf("invalid config in %s/config.json: %w", configDir, err)
	}

	summary, err := service.NewSummaryService(cfg.Packages).Summarize()
	if err != nil {
		return fmt.Errorf("reading sensor packages: %w", err)
	}

	if cfg.Display.Mode == config.ModeTUI {
		if err := tui.Run(summary, cfg.Display); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	for _, msg := range summary.Messages() {
		fmt.Fprintln(out, msg)
	}
	return nil
}
