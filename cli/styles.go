package cli

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorResult  = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles.
var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	versionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorResult)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	treeStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
