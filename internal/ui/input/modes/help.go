package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/ui/input/types"
)

// HelpMode shows the full key reference until dismissed
type HelpMode struct {
	close key.Binding
	force key.Binding
}

func NewHelpMode(close, force key.Binding) *HelpMode {
	return &HelpMode{close: close, force: force}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.force) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if key.Matches(msg, m.close) {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	// Swallow everything else so the controls underneath stay untouched
	return nil, true
}
