package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the send form.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Unit         lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonCounting lipgloss.Style

	StatusOK    lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	button := lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")),
		Label: lipgloss.NewStyle().
			Width(9).
			Foreground(lipgloss.Color("245")),
		LabelFocused: lipgloss.NewStyle().
			Width(9).
			Bold(true).
			Foreground(lipgloss.Color("212")),
		Unit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		Button: button.
			BorderForeground(lipgloss.Color("240")),
		ButtonFocused: button.
			BorderForeground(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Bold(true),
		ButtonDisabled: button.
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("240")),
		ButtonCounting: button.
			BorderForeground(lipgloss.Color("179")). // Muted yellow
			Foreground(lipgloss.Color("179")),

		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
