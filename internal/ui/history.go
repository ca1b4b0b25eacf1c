package ui

import (
	"fmt"
	"strings"
	"time"

	"selectbox/internal/controls"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
)

// HistoryEntry is one committed selection change
type HistoryEntry struct {
	At        time.Time
	ControlID string
	Mode      domain.Mode
	Selected  []domain.Option
}

// History records every selection change published on the bus
type History struct {
	entries     []HistoryEntry
	now         func() time.Time
	unsubscribe func()
}

// NewHistory subscribes a new history to bus
func NewHistory(bus eventbus.EventBus) *History {
	h := &History{now: time.Now}
	h.unsubscribe = bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.SelectionChangedEvent)
		if !ok {
			return
		}
		h.entries = append(h.entries, HistoryEntry{
			At:        h.now(),
			ControlID: ev.ControlID,
			Mode:      ev.Mode,
			Selected:  ev.Selected,
		})
	})
	return h
}

// Entries returns the recorded changes, oldest first
func (h *History) Entries() []HistoryEntry {
	return h.entries
}

// Len returns the number of recorded changes
func (h *History) Len() int {
	return len(h.entries)
}

// Render formats the history for the pager
func (h *History) Render() string {
	if len(h.entries) == 0 {
		return "No selection changes yet.\n"
	}
	var b strings.Builder
	for _, e := range h.entries {
		fmt.Fprintf(&b, "%s  %s = %s\n", e.At.Format("15:04:05"), e.ControlID, controls.Describe(e.Mode, e.Selected))
	}
	return b.String()
}

// Close stops recording
func (h *History) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
}
