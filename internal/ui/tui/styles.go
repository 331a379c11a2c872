package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B2636")).
			Padding(0, 1)

	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#55CC55"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	responseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)
