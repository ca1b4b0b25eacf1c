// Package controls builds select controllers from configuration and wires
// their value sinks and input subscriptions to the event bus.
package controls

import (
	"fmt"
	"log"
	"strings"

	"selectbox/internal/config"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/router"
	"selectbox/internal/selection"
)

// Control is one configured select control
type Control struct {
	ID    string
	Label string
	selection.Controller
}

// Set owns the controls of one screen
type Set struct {
	bus    eventbus.EventBus
	router *router.Router
	items  []*Control
}

// Build creates a controller per configured control and attaches each to r
func Build(cfg *config.Config, bus eventbus.EventBus, r *router.Router) (*Set, error) {
	s := &Set{bus: bus, router: r}

	for i := range cfg.Controls {
		cc := &cfg.Controls[i]
		mode, err := cc.DomainMode()
		if err != nil {
			return nil, err
		}
		options, err := cc.DomainOptions()
		if err != nil {
			return nil, err
		}
		initial, err := cc.InitialSelection()
		if err != nil {
			return nil, err
		}

		var ctrl selection.Controller
		switch mode {
		case domain.ModeSingle:
			var first *domain.Option
			if len(initial) > 0 {
				first = &initial[0]
			}
			ctrl = selection.NewSingle(options, first, s.singleSink(cc.ID))
		case domain.ModeMultiple:
			ctrl = selection.NewMultiple(options, initial, s.multiSink(cc.ID))
		default:
			return nil, fmt.Errorf("control %q: %w", cc.ID, config.ErrUnknownMode)
		}

		label := cc.Label
		if label == "" {
			label = cc.ID
		}
		ctrl.Attach(r, cc.ID)
		s.items = append(s.items, &Control{ID: cc.ID, Label: label, Controller: ctrl})
	}

	return s, nil
}

// All returns the controls in configuration order
func (s *Set) All() []*Control {
	return s.items
}

// Get returns the control with the given id
func (s *Set) Get(id string) (*Control, bool) {
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Index returns the position of id, or -1
func (s *Set) Index(id string) int {
	for i, c := range s.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Focused returns the control holding input focus, if any
func (s *Set) Focused() (*Control, bool) {
	return s.Get(s.router.Focused())
}

// StoreInto writes every control's current selection into cfg
func (s *Set) StoreInto(cfg *config.Config) {
	for _, c := range s.items {
		cfg.SetSelected(c.ID, c.Selected())
	}
}

// Release detaches every control from the input source
func (s *Set) Release() {
	for _, c := range s.items {
		c.Release()
	}
}

func (s *Set) singleSink(id string) selection.SingleSink {
	return func(option domain.Option, ok bool) {
		var selected []domain.Option
		if ok {
			selected = []domain.Option{option}
		}
		s.publish(id, domain.ModeSingle, selected)
	}
}

func (s *Set) multiSink(id string) selection.MultiSink {
	return func(selected []domain.Option) {
		s.publish(id, domain.ModeMultiple, selected)
	}
}

func (s *Set) publish(id string, mode domain.Mode, selected []domain.Option) {
	log.Printf("Control %s: selection is now %s", id, Describe(mode, selected))
	s.bus.Publish(eventbus.SelectionChangedEvent{
		ControlID: id,
		Mode:      mode,
		Selected:  selected,
	})
}

// Describe formats a selection for logs and the change history
func Describe(mode domain.Mode, selected []domain.Option) string {
	if mode == domain.ModeSingle {
		if len(selected) == 0 {
			return "(none)"
		}
		return selected[0].Label
	}
	labels := make([]string, 0, len(selected))
	for _, o := range selected {
		labels = append(labels, o.Label)
	}
	return "{" + strings.Join(labels, ", ") + "}"
}
