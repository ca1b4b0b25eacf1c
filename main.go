package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/config"
	"selectbox/internal/controls"
	"selectbox/internal/eventbus"
	"selectbox/internal/router"
	"selectbox/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", config.DefaultFileName, "Path to the controls file")
	flag.StringVar(&configPath, "c", config.DefaultFileName, "Path to the controls file (shorthand)")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	if cfg.UISettings.LogFile != "" {
		logFile, err := os.OpenFile(cfg.UISettings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	r := router.New(bus)
	set, err := controls.Build(cfg, bus, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building controls: %v\n", err)
		os.Exit(1)
	}

	log.Printf("Creating UI model with %d controls", len(set.All()))
	model := ui.NewModel(bus, cfg, configSvc, r, set)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	for _, c := range set.All() {
		fmt.Printf("%s: %s\n", c.ID, controls.Describe(c.Mode(), c.Selected()))
	}
}

// loadOrCreateConfig loads the controls file, writing the defaults when it does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	if _, err := os.Stat(configSvc.Path()); errors.Is(err, os.ErrNotExist) {
		cfg := config.DefaultConfig()
		log.Printf("Creating new config at %s", configSvc.Path())
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		return cfg, nil
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded config from %s", configSvc.Path())
	return cfg, nil
}
