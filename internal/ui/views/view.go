package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Controls      []ControlView
	StatusMessage string
	HelpLine      string
	ShowHelp      bool
	HelpContent   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	selectRender *SelectRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		selectRender: NewSelectRenderer(styles),
	}
}

// Render produces the complete view and the clickable zones in it
func (r *Renderer) Render(state ViewState) (string, []Zone) {
	if state.ShowHelp {
		return r.renderHelp(state), nil
	}

	lines := []string{r.styles.Title.Render("selectbox"), ""}
	var zones []Zone

	for i, cv := range state.Controls {
		ctlLines, ctlZones := r.selectRender.Render(cv, i, len(lines), state.Width)
		lines = append(lines, ctlLines...)
		zones = append(zones, ctlZones...)
		lines = append(lines, "")
	}

	if state.StatusMessage != "" {
		lines = append(lines, r.styles.Status.Render(state.StatusMessage))
	}
	if state.HelpLine != "" {
		lines = append(lines, "", state.HelpLine)
	}

	return strings.Join(lines, "\n"), zones
}

func (r *Renderer) renderHelp(state ViewState) string {
	box := r.styles.HelpBox.Render(
		r.styles.Title.Render("selectbox help") + "\n\n" + state.HelpContent + "\n\n" +
			r.styles.Dim.Render("esc, ? or q to close"),
	)
	if state.Width == 0 || state.Height == 0 {
		return box
	}
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, box)
}
