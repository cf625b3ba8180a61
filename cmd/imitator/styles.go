package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for terminal output.
var (
	// User input prompt.
	youPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green

	// Generated reply.
	replyPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	replyBlockStyle  = lipgloss.NewStyle().PaddingLeft(1)

	// General utility styles.
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // red
)
