package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/ui/input/modes"
	"selectbox/internal/ui/input/types"
)

type Handler struct {
	keys        KeyMap
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New(keys KeyMap) *Handler {
	h := &Handler{
		keys:        keys,
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(keys, keys.Next, keys.Prev, keys.Clear, keys.History, keys.Save, keys.Help, keys.Quit, keys.Force)
	h.modes[types.ModeHelp] = modes.NewHelpMode(
		key.NewBinding(key.WithKeys(append(append([]string{"esc"}, keys.Help.Keys()...), keys.Quit.Keys()...)...)),
		keys.Force,
	)

	return h
}

// HandleKey runs the key through the current mode and applies mode changes.
// Mode changes are consumed here; every other action is returned.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}

		// Exit current mode
		if cur := h.modes[h.currentMode]; cur != nil {
			allActions = append(allActions, cur.Exit(ctx)...)
		}

		h.currentMode = changeMode.Mode

		// Enter new mode
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}
	}

	return allActions
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Keys returns the key bindings in use
func (h *Handler) Keys() KeyMap {
	return h.keys
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
