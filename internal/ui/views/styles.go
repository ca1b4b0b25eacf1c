package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title             lipgloss.Style
	Label             lipgloss.Style
	LabelFocused      lipgloss.Style
	Value             lipgloss.Style
	Placeholder       lipgloss.Style
	Chip              lipgloss.Style
	ChipRemove        lipgloss.Style
	ClearButton       lipgloss.Style
	Caret             lipgloss.Style
	Divider           lipgloss.Style
	Option            lipgloss.Style
	OptionHighlighted lipgloss.Style
	OptionSelected    lipgloss.Style
	Status            lipgloss.Style
	Dim               lipgloss.Style
	HelpBox           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Value:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Placeholder:  lipgloss.NewStyle().Faint(true).Italic(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("238")),
		ChipRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("238")),
		ClearButton: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Caret:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Option:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionHighlighted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")),
		OptionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:            lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
	}
}
