package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIntent           EventType = "Intent"
	EventFocusGained      EventType = "FocusGained"
	EventFocusLost        EventType = "FocusLost"
	EventSelectionChanged EventType = "SelectionChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IntentEvent carries a normalized input intent addressed to one control
type IntentEvent struct {
	Origin string
	Intent Intent
}

func (e IntentEvent) Type() EventType { return EventIntent }

// FocusGainedEvent is emitted when a control receives input focus
type FocusGainedEvent struct {
	Origin string
}

func (e FocusGainedEvent) Type() EventType { return EventFocusGained }

// FocusLostEvent is emitted when a control loses input focus
type FocusLostEvent struct {
	Origin string
}

func (e FocusLostEvent) Type() EventType { return EventFocusLost }

// SelectionChangedEvent is emitted once per committed selection change.
// Selected is the full selection after the change, never a delta; it is
// empty when a single-mode control was cleared.
type SelectionChangedEvent struct {
	ControlID string
	Mode      Mode
	Selected  []Option
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Controls int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
