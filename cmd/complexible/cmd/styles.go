package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
	colorOK      = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
)

// Styles
var (
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	TrueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorOK)

	FalseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)
