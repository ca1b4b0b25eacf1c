// Command selectreplay drives one configured control with a scripted key
// sequence and prints every committed selection.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"selectbox/internal/config"
	"selectbox/internal/controls"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/router"
)

var errUnknownControl = errors.New("unknown control")

func main() {
	configPath := flag.String("config", config.DefaultFileName, "Path to the controls file")
	control := flag.String("control", "", "Control id to drive (default: first control)")
	keys := flag.String("keys", "", `Comma separated keys, e.g. "down,down,enter"`)
	verbose := flag.Bool("v", false, "Log to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.NewConfigService(*configPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := replay(cfg, *control, *keys, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// replay focuses control and feeds it the key script. Besides the intent
// names, "tab" and "shift+tab" move focus between controls.
func replay(cfg *config.Config, control, script string, out io.Writer) error {
	bus := eventbus.New()
	r := router.New(bus)
	set, err := controls.Build(cfg, bus, r)
	if err != nil {
		return err
	}
	defer set.Release()

	if control == "" {
		control = cfg.Controls[0].ID
	}
	if _, ok := set.Get(control); !ok {
		return fmt.Errorf("%q: %w", control, errUnknownControl)
	}

	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectionChangedEvent); ok {
			fmt.Fprintf(out, "%s = %s\n", ev.ControlID, controls.Describe(ev.Mode, ev.Selected))
		}
	})

	r.Focus(control)
	for _, raw := range strings.Split(script, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "":
			continue
		case "tab":
			r.FocusNext()
			continue
		case "shift+tab":
			r.FocusPrev()
			continue
		}
		intent, ok := domain.ParseIntent(name)
		if !ok {
			return fmt.Errorf("unknown key %q", raw)
		}
		r.Dispatch(intent)
	}

	for _, c := range set.All() {
		if c.IsOpen() {
			fmt.Fprintf(out, "%s is still open (highlight %d)\n", c.ID, c.Highlighted())
		}
	}
	return nil
}
