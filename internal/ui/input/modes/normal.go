package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/domain"
	"selectbox/internal/ui/input/types"
)

// Normalizer turns a raw key into an intent
type Normalizer interface {
	Intent(msg tea.KeyMsg) domain.Intent
}

// NormalMode drives the focused control
type NormalMode struct {
	intents Normalizer
	next    key.Binding
	prev    key.Binding
	clear   key.Binding
	history key.Binding
	save    key.Binding
	help    key.Binding
	quit    key.Binding
	force   key.Binding
}

func NewNormalMode(intents Normalizer, next, prev, clear, history, save, help, quit, force key.Binding) *NormalMode {
	return &NormalMode{
		intents: intents,
		next:    next,
		prev:    prev,
		clear:   clear,
		history: history,
		save:    save,
		help:    help,
		quit:    quit,
		force:   force,
	}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.force) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	if intent := m.intents.Intent(msg); intent != domain.IntentNone {
		if ctx.FocusedControl() == "" {
			if intent == domain.IntentDismiss {
				return nil, false
			}
			// Nothing to talk to yet: the first keypress focuses a control
			return []types.Action{types.FocusAction{Direction: "next"}}, true
		}
		return []types.Action{types.IntentAction{Intent: intent}}, true
	}

	switch {
	case key.Matches(msg, m.next):
		return []types.Action{types.FocusAction{Direction: "next"}}, true
	case key.Matches(msg, m.prev):
		return []types.Action{types.FocusAction{Direction: "prev"}}, true
	case key.Matches(msg, m.clear):
		if ctx.FocusedControl() == "" {
			return nil, false
		}
		return []types.Action{types.ClearAction{}}, true
	case key.Matches(msg, m.history):
		return []types.Action{types.ShowHistoryAction{}}, true
	case key.Matches(msg, m.save):
		return []types.Action{types.SaveAction{}}, true
	case key.Matches(msg, m.help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	case key.Matches(msg, m.quit):
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
