package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	todayColor   = lipgloss.Color("39")
	weekendColor = lipgloss.Color("173")
	mutedColor   = lipgloss.Color("245")
	rangeColor   = lipgloss.Color("60")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Align(lipgloss.Center)

	arrowStyle       = lipgloss.NewStyle().Foreground(mutedColor)
	activeArrowStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			Align(lipgloss.Center)

	weekColumnStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Align(lipgloss.Center)

	cellStyle     = lipgloss.NewStyle().Align(lipgloss.Center)
	adjacentStyle = cellStyle.Foreground(mutedColor).Faint(true)
	weekendStyle  = cellStyle.Foreground(weekendColor)
	todayStyle    = cellStyle.Foreground(todayColor).Bold(true)
	rangeStyle    = cellStyle.Background(rangeColor)
	selectedStyle = cellStyle.Foreground(lipgloss.Color("0")).Background(accentColor).Bold(true)
	disabledStyle = cellStyle.Foreground(mutedColor).Strikethrough(true)

	timeStyle      = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	statusStyle    = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
	valueStyle     = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	helpStyle      = lipgloss.NewStyle().MarginTop(1)
	containerStyle = lipgloss.NewStyle().Padding(0, 1)
)
