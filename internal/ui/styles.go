package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used for terminal output.

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")) // purple

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46")). // green
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // red
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	fileStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("252")) // light gray

	errStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("203")) // soft red
)
