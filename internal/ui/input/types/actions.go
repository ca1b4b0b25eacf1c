package types

import "selectbox/internal/domain"

// IntentAction forwards a normalized intent to the focused control
type IntentAction struct {
	Intent domain.Intent
}

func (a IntentAction) Type() string { return "intent" }

// FocusAction moves focus between controls
type FocusAction struct {
	Direction string // "next" or "prev"
}

func (a FocusAction) Type() string { return "focus" }

// ClearAction clears the focused control's selection
type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// SaveAction writes the current selections to the config file
type SaveAction struct{}

func (a SaveAction) Type() string { return "save" }

// ShowHistoryAction opens the selection change log in a pager
type ShowHistoryAction struct{}

func (a ShowHistoryAction) Type() string { return "show_history" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
