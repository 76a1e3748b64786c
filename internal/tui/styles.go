package tui

import "github.com/charmbracelet/lipgloss"

const cardWidth = 36

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	disabledStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	navbarStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).MarginBottom(1)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(cardWidth)
	activeCardStyle = cardStyle.BorderForeground(lipgloss.Color("12"))
	tagStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)
