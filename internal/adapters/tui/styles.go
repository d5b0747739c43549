package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	subtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C4B5FD"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			MarginTop(1)

	linkStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color("#60A5FA"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F1F5F9")).
			MarginTop(1)

	skeletonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#EF4444")).
			Foreground(lipgloss.Color("#FCA5A5")).
			Padding(0, 2)

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)
