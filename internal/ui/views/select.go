package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectbox/internal/domain"
)

const (
	placeholder = "Select…"
	clearGlyph  = "×"
)

// ControlView is what the renderer needs to draw one control
type ControlView struct {
	Label    string
	Focused  bool
	Mode     domain.Mode
	Options  []domain.Option
	Selected []domain.Option
	Open     bool
	// Highlighted is only read while Open
	Highlighted int
	IsSelected  func(domain.Option) bool
}

// SelectRenderer draws a single select control
type SelectRenderer struct {
	styles *Styles
}

// NewSelectRenderer creates a new select renderer
func NewSelectRenderer(styles *Styles) *SelectRenderer {
	return &SelectRenderer{styles: styles}
}

// Render draws control number idx with its first line at row top.
// It returns the lines and the clickable zones in screen coordinates.
func (r *SelectRenderer) Render(v ControlView, idx, top, width int) ([]string, []Zone) {
	var lines []string
	var zones []Zone

	// Label line
	marker := "  "
	labelStyle := r.styles.Label
	if v.Focused {
		marker = "▸ "
		labelStyle = r.styles.LabelFocused
	}
	lines = append(lines, marker+labelStyle.Render(v.Label))

	// Box line: value or chips, clear button, divider, caret
	boxY := top + 1
	var b strings.Builder
	x := 0
	write := func(s string) int {
		start := x
		b.WriteString(s)
		x += lipgloss.Width(s)
		return start
	}

	write("  ")
	boxStart := x
	switch {
	case v.Mode == domain.ModeMultiple && len(v.Selected) > 0:
		for i, o := range v.Selected {
			if i > 0 {
				write(" ")
			}
			chip := r.styles.Chip.Render(" "+o.Label+" ") + r.styles.ChipRemove.Render(clearGlyph+" ")
			start := write(chip)
			zones = append(zones, Zone{
				Kind:    ZoneChip,
				Control: idx,
				Option:  optionIndex(v.Options, o),
				X:       start,
				Y:       boxY,
				Width:   lipgloss.Width(chip),
			})
		}
	case v.Mode == domain.ModeSingle && len(v.Selected) > 0:
		write(r.styles.Value.Render(v.Selected[0].Label))
	default:
		write(r.styles.Placeholder.Render(placeholder))
	}

	write("  ")
	clearX := write(r.styles.ClearButton.Render(clearGlyph))
	write(" " + r.styles.Divider.Render("│") + " ")
	caret := "▾"
	if v.Open {
		caret = "▴"
	}
	write(r.styles.Caret.Render(caret))

	boxWidth := x - boxStart
	if width > x {
		boxWidth = width - boxStart
	}
	// The box goes first so chips and the clear button win hit tests
	zones = append([]Zone{{Kind: ZoneBox, Control: idx, Option: -1, X: boxStart, Y: boxY, Width: boxWidth}}, zones...)
	zones = append(zones, Zone{Kind: ZoneClear, Control: idx, Option: -1, X: clearX, Y: boxY, Width: lipgloss.Width(clearGlyph)})
	lines = append(lines, b.String())

	if !v.Open {
		return lines, zones
	}

	// Option rows
	rowWidth := 0
	for _, o := range v.Options {
		if w := lipgloss.Width(o.Label); w > rowWidth {
			rowWidth = w
		}
	}
	rowWidth += 4 // check mark and padding
	for i, o := range v.Options {
		check := "  "
		style := r.styles.Option
		if v.IsSelected != nil && v.IsSelected(o) {
			check = "✓ "
			style = r.styles.OptionSelected
		}
		if i == v.Highlighted {
			style = r.styles.OptionHighlighted
		}
		text := check + o.Label
		if pad := rowWidth - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		lines = append(lines, "    "+style.Render(text))
		zones = append(zones, Zone{
			Kind:    ZoneOption,
			Control: idx,
			Option:  i,
			X:       4,
			Y:       top + len(lines) - 1,
			Width:   rowWidth,
		})
	}

	return lines, zones
}

func optionIndex(options []domain.Option, o domain.Option) int {
	for i, candidate := range options {
		if candidate == o {
			return i
		}
	}
	return -1
}
