package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the editor.
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	CurrentRow  lipgloss.Style
	OverrunRow  lipgloss.Style
	Notes       lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Prompt      lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Header:      lipgloss.NewStyle().Faint(true).Underline(true),
		Row:         lipgloss.NewStyle(),
		SelectedRow: lipgloss.NewStyle().Reverse(true),
		CurrentRow:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		OverrunRow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Notes:       lipgloss.NewStyle().Faint(true).PaddingLeft(6),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:        lipgloss.NewStyle().Faint(true),
		Prompt:      lipgloss.NewStyle().Bold(true),
	}
}
