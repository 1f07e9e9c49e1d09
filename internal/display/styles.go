package display

import "github.com/charmbracelet/lipgloss"

// Styles for the console output. Card art is printed verbatim so its
// dimensions survive; only headings and banners are styled.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	RuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	MessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	OutcomeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)
