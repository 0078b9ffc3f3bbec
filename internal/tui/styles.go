package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	onColor      = lipgloss.Color("196")
	offColor     = lipgloss.Color("201")
	mutedColor   = lipgloss.Color("245")

	appStyle = lipgloss.NewStyle().Padding(1, 4)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	labelStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	fieldStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			Width(fieldWidth)

	focusedFieldStyle = fieldStyle.BorderForeground(accentColor)

	switchOnStyle  = lipgloss.NewStyle().Foreground(onColor).Bold(true)
	switchOffStyle = lipgloss.NewStyle().Foreground(offColor)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			Width(fieldWidth + 4).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)

const fieldWidth = 32
