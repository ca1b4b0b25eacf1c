package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/config"
	"selectbox/internal/controls"
	"selectbox/internal/eventbus"
	"selectbox/internal/router"
	"selectbox/internal/ui/input"
	inputtypes "selectbox/internal/ui/input/types"
	"selectbox/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	config   *config.Config
	cfgSvc   config.ConfigService
	router   *router.Router
	controls *controls.Set
	history  *History

	width         int
	height        int
	help          help.Model
	showHelp      bool
	statusMessage string
	inPagerMode   bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	inputHandler *input.Handler
	zones        []views.Zone // clickable regions of the last frame

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. cfgSvc may be nil, which disables saving.
func NewModel(bus eventbus.EventBus, cfg *config.Config, cfgSvc config.ConfigService, r *router.Router, set *controls.Set) *Model {
	m := &Model{
		config:       cfg,
		cfgSvc:       cfgSvc,
		router:       r,
		controls:     set,
		history:      NewHistory(bus),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(input.DefaultKeyMap()),
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// History returns the selection change history
func (m *Model) History() *History {
	return m.history
}

// FocusedControl implements inputtypes.Context
func (m *Model) FocusedControl() string {
	return m.router.Focused()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		actions := m.inputHandler.HandleKey(msg, m)

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case historyPagerMsg:
		if msg.err != nil {
			log.Printf("History pager failed: %v", msg.err)
			return m, m.setStatus("Could not open history: " + msg.err.Error())
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.IntentAction:
		m.router.Dispatch(a.Intent)

	case inputtypes.FocusAction:
		if a.Direction == "prev" {
			m.router.FocusPrev()
		} else {
			m.router.FocusNext()
		}

	case inputtypes.ClearAction:
		if ctl, ok := m.controls.Focused(); ok {
			ctl.ClearSelection()
		}

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.ShowHistoryAction:
		return m.fetchHistoryPager(m.history.Render())

	case inputtypes.SaveAction:
		if m.cfgSvc == nil {
			return m.setStatus("Saving is disabled")
		}
		if err := m.save(); err != nil {
			return m.setStatus("Save failed: " + err.Error())
		}
		return m.setStatus("Saved " + m.cfgSvc.Path())

	case inputtypes.QuitAction:
		if !a.Force && m.config.UISettings.AutosaveOnExit {
			if err := m.save(); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		}
		m.controls.Release()
		m.history.Close()
		return tea.Quit
	}

	return nil
}

// handleMouse routes pointer input straight to the controller under the cursor
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp || m.inPagerMode {
		return
	}

	zone, hit := views.HitTest(m.zones, msg.X, msg.Y)
	var ctl *controls.Control
	if hit {
		all := m.controls.All()
		if zone.Control < 0 || zone.Control >= len(all) {
			return
		}
		ctl = all[zone.Control]
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if hit && zone.Kind == views.ZoneOption {
			ctl.SetHighlighted(zone.Option)
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if !hit {
			m.router.Blur()
			return
		}
		m.router.Focus(ctl.ID)

		switch zone.Kind {
		case views.ZoneBox:
			ctl.ToggleOpen()
		case views.ZoneChip:
			options := ctl.Options()
			if zone.Option >= 0 && zone.Option < len(options) {
				ctl.SelectOption(options[zone.Option])
			}
		case views.ZoneClear:
			ctl.ClearSelection()
		case views.ZoneOption:
			ctl.Pick(zone.Option)
		}
	}
}

// save writes the current selections back to the config file
func (m *Model) save() error {
	if m.cfgSvc == nil {
		return nil
	}
	m.controls.StoreInto(m.config)
	return m.cfgSvc.Save(m.config)
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.statusMessage = s
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHistoryPager returns a command that shows the history using ov pager
func (m *Model) fetchHistoryPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return historyPagerMsg{err: fmt.Errorf("program not set")}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := NewPagerOps(m.program).Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return historyPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	keys := m.inputHandler.Keys()
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		StatusMessage: m.statusMessage,
		ShowHelp:      m.showHelp,
	}
	if m.config.UISettings.ShowHelp {
		state.HelpLine = m.help.ShortHelpView(keys.ShortHelp())
	}
	if m.showHelp {
		state.HelpContent = m.help.FullHelpView(keys.FullHelp())
	}

	focused := m.router.Focused()
	for _, c := range m.controls.All() {
		state.Controls = append(state.Controls, views.ControlView{
			Label:       c.Label,
			Focused:     c.ID == focused,
			Mode:        c.Mode(),
			Options:     c.Options(),
			Selected:    c.Selected(),
			Open:        c.IsOpen(),
			Highlighted: c.Highlighted(),
			IsSelected:  c.IsSelected,
		})
	}

	view, zones := m.renderer.Render(state)
	m.zones = zones
	return view
}
