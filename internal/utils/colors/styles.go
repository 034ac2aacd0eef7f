package colors

import "github.com/charmbracelet/lipgloss"

var (
	ProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#58a6ff"})
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"})
	FailureStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"})
	FaintStyle    = lipgloss.NewStyle().Faint(true)

	TitleStyle = lipgloss.NewStyle().Bold(true)
	StarStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"})
	LabelStyle = lipgloss.NewStyle().Faint(true).Width(13)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#58a6ff"})
	FocusedButtonStyle = ButtonStyle.
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#1f6feb"})
)
