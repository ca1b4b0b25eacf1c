// Package selection implements the open/highlight/selection state machine
// behind a dropdown control, for single- and multi-value modes.
package selection

import (
	"selectbox/internal/domain"
)

// Controller is the surface shared by both selection modes. The
// presentation layer reads state through it and forwards pointer input.
type Controller interface {
	Mode() domain.Mode
	Options() []domain.Option
	IsOpen() bool
	Highlighted() int
	IsSelected(option domain.Option) bool
	// Selected returns the current selection in display order
	Selected() []domain.Option

	ToggleOpen()
	Close()
	SetHighlighted(index int)
	SelectOption(option domain.Option)
	ClearSelection()
	Pick(index int)
	HandleIntent(intent domain.Intent)

	Attach(src Source, id string)
	Release()
}

// Source delivers intents and focus loss addressed to a single control.
// Implementations must drop everything that did not originate from id.
type Source interface {
	Subscribe(id string, onIntent func(domain.Intent), onBlur func()) (unsubscribe func())
}

// core holds the state shared by both modes. commit is the mode's
// SelectOption, used for keyboard and pointer commits.
type core struct {
	options     []domain.Option
	open        bool
	highlighted int
	commit      func(domain.Option)
	unsubscribe func()
}

func newCore(options []domain.Option) core {
	return core{options: append([]domain.Option(nil), options...)}
}

// Options returns the option list; callers must not modify it
func (c *core) Options() []domain.Option {
	return c.options
}

// IsOpen reports whether the option list is presented
func (c *core) IsOpen() bool {
	return c.open
}

// Highlighted returns the highlighted index. Only meaningful while open.
func (c *core) Highlighted() int {
	return c.highlighted
}

// ToggleOpen flips the open flag, resetting the highlight when opening
func (c *core) ToggleOpen() {
	if c.open {
		c.open = false
		return
	}
	c.openList()
}

// Close closes the list. The selection is left untouched.
func (c *core) Close() {
	c.open = false
}

// SetHighlighted moves the highlight; out-of-range indexes are ignored
func (c *core) SetHighlighted(index int) {
	if index < 0 || index >= len(c.options) {
		return
	}
	c.highlighted = index
}

// Pick commits the option at index and closes the list, as a click on an
// option row does
func (c *core) Pick(index int) {
	if index < 0 || index >= len(c.options) {
		return
	}
	c.commit(c.options[index])
	c.Close()
}

// HandleIntent applies one normalized keyboard intent
func (c *core) HandleIntent(intent domain.Intent) {
	switch intent {
	case domain.IntentConfirm:
		if !c.open {
			c.openList()
			return
		}
		// Confirm on an open list commits and closes in the same step
		if c.highlighted < len(c.options) {
			c.commit(c.options[c.highlighted])
		}
		c.Close()

	case domain.IntentUp, domain.IntentDown:
		if !c.open {
			c.openList()
			return
		}
		step := 1
		if intent == domain.IntentUp {
			step = -1
		}
		c.SetHighlighted(c.highlighted + step)

	case domain.IntentDismiss:
		c.Close()
	}
}

// Attach subscribes the controller to src for the given control id,
// replacing any earlier subscription
func (c *core) Attach(src Source, id string) {
	c.Release()
	c.unsubscribe = src.Subscribe(id, c.HandleIntent, c.Close)
}

// Release drops the input subscription. Safe to call more than once.
func (c *core) Release() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *core) openList() {
	c.open = true
	c.highlighted = 0
}
