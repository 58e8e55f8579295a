package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the search screen.
type Styles struct {
	Title    lipgloss.Style
	Dropdown lipgloss.Style
	Item     lipgloss.Style
	Meta     lipgloss.Style
	Snippet  lipgloss.Style
	Empty    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Item:    lipgloss.NewStyle().Bold(true),
		Meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Snippet: lipgloss.NewStyle().Faint(true),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:    lipgloss.NewStyle().Faint(true),
	}
}
