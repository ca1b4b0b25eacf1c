package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/domain"
)

// KeyMap holds every key binding of the application
type KeyMap struct {
	Confirm key.Binding
	Up      key.Binding
	Down    key.Binding
	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
	Clear   key.Binding
	History key.Binding
	Save    key.Binding
	Help    key.Binding
	Quit    key.Binding
	Force   key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "open/choose")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev control")),
		Clear:   key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "clear")),
		History: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "change log")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s", "S"), key.WithHelp("S", "save")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Up, k.Down, k.Next, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Up, k.Down, k.Dismiss},
		{k.Next, k.Prev, k.Clear},
		{k.History, k.Save, k.Help, k.Quit},
	}
}

// Intent normalizes a raw key into the controller alphabet.
// Keys outside the alphabet map to domain.IntentNone.
func (k KeyMap) Intent(msg tea.KeyMsg) domain.Intent {
	switch {
	case key.Matches(msg, k.Confirm):
		return domain.IntentConfirm
	case key.Matches(msg, k.Up):
		return domain.IntentUp
	case key.Matches(msg, k.Down):
		return domain.IntentDown
	case key.Matches(msg, k.Dismiss):
		return domain.IntentDismiss
	}
	return domain.IntentNone
}
