// Package router is the input source for select controls. It tracks which
// control has focus and forwards intents only to that control.
package router

import (
	"log"
	"slices"

	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
)

// Router routes normalized intents to the focused control over the event bus
type Router struct {
	bus     eventbus.EventBus
	order   []string       // focus order, by first subscription
	rank    map[string]int // first-subscription position, survives re-subscribing
	focused string
}

// New creates a router publishing on bus
func New(bus eventbus.EventBus) *Router {
	return &Router{bus: bus, rank: make(map[string]int)}
}

// Subscribe registers a control. onIntent receives intents whose origin is
// id; onBlur runs when id loses focus. The returned func deregisters.
// A control that subscribes again takes back its original place in the
// focus order.
func (r *Router) Subscribe(id string, onIntent func(domain.Intent), onBlur func()) func() {
	r.insert(id)

	unsubIntent := r.bus.Subscribe(eventbus.EventIntent, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.IntentEvent); ok && ev.Origin == id {
			onIntent(ev.Intent)
		}
	})
	unsubBlur := r.bus.Subscribe(eventbus.EventFocusLost, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FocusLostEvent); ok && ev.Origin == id {
			onBlur()
		}
	})

	return func() {
		unsubIntent()
		unsubBlur()
		r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })
		if r.focused == id {
			r.focused = ""
		}
	}
}

func (r *Router) insert(id string) {
	if slices.Contains(r.order, id) {
		return
	}
	rank, ok := r.rank[id]
	if !ok {
		rank = len(r.rank)
		r.rank[id] = rank
	}
	i, _ := slices.BinarySearchFunc(r.order, rank, func(other string, target int) int {
		return r.rank[other] - target
	})
	r.order = slices.Insert(r.order, i, id)
}

// Controls returns the registered control ids in focus order
func (r *Router) Controls() []string {
	return slices.Clone(r.order)
}

// Focused returns the id of the focused control, or "" if none
func (r *Router) Focused() string {
	return r.focused
}

// Focus moves focus to id. The previously focused control receives a
// focus-loss signal. Unknown ids are ignored.
func (r *Router) Focus(id string) {
	if id == r.focused || !slices.Contains(r.order, id) {
		return
	}
	r.Blur()
	r.focused = id
	r.bus.Publish(eventbus.FocusGainedEvent{Origin: id})
}

// Blur removes focus from the focused control
func (r *Router) Blur() {
	if r.focused == "" {
		return
	}
	prev := r.focused
	r.focused = ""
	r.bus.Publish(eventbus.FocusLostEvent{Origin: prev})
}

// FocusNext moves focus to the next control, wrapping around
func (r *Router) FocusNext() {
	r.cycle(1)
}

// FocusPrev moves focus to the previous control, wrapping around
func (r *Router) FocusPrev() {
	r.cycle(-1)
}

func (r *Router) cycle(step int) {
	n := len(r.order)
	if n == 0 {
		return
	}
	i := slices.Index(r.order, r.focused)
	if i < 0 {
		// Nothing focused: forward starts at the first control, backward at the last
		if step > 0 {
			r.Focus(r.order[0])
		} else {
			r.Focus(r.order[n-1])
		}
		return
	}
	r.Focus(r.order[(i+step+n)%n])
}

// Dispatch sends intent to the focused control. It reports whether the
// intent was delivered.
func (r *Router) Dispatch(intent domain.Intent) bool {
	if r.focused == "" {
		return false
	}
	return r.Deliver(r.focused, intent)
}

// Deliver sends intent on behalf of origin. Events from a control that
// does not hold focus are dropped.
func (r *Router) Deliver(origin string, intent domain.Intent) bool {
	if intent == domain.IntentNone {
		return false
	}
	if origin == "" || origin != r.focused {
		log.Printf("Router: dropping %s from %q (focused %q)", intent, origin, r.focused)
		return false
	}
	r.bus.Publish(eventbus.IntentEvent{Origin: origin, Intent: intent})
	return true
}
