package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"selectbox/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventIntent           = domain.EventIntent
	EventFocusGained      = domain.EventFocusGained
	EventFocusLost        = domain.EventFocusLost
	EventSelectionChanged = domain.EventSelectionChanged
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type IntentEvent = domain.IntentEvent
type FocusGainedEvent = domain.FocusGainedEvent
type FocusLostEvent = domain.FocusLostEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Events are delivered on the publishing goroutine, strictly in publish
// order. An event published from inside a handler is queued and delivered
// after the current event has reached every subscriber.
type bus struct {
	mu          sync.Mutex
	handlers    map[EventType][]subscription
	nextID      uint64
	queue       []DomainEvent
	dispatching bool
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers of its type
func (b *bus) Publish(event DomainEvent) {
	b.mu.Lock()
	b.queue = append(b.queue, event)
	if b.dispatching {
		b.mu.Unlock()
		return
	}
	b.dispatching = true
	b.mu.Unlock()

	b.drain()
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					// Copy so an in-flight dispatch keeps its snapshot intact
					next := make([]subscription, 0, len(subs)-1)
					next = append(next, subs[:i]...)
					next = append(next, subs[i+1:]...)
					b.handlers[eventType] = next
					break
				}
			}
		})
	}
}

// drain dispatches queued events until the queue is empty
func (b *bus) drain() {
	for {
		b.mu.Lock()
		if len(b.queue) == 0 {
			b.dispatching = false
			b.mu.Unlock()
			return
		}
		event := b.queue[0]
		b.queue = b.queue[1:]
		subs := b.handlers[event.Type()]
		b.mu.Unlock()

		for _, s := range subs {
			b.call(s.handler, event)
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
