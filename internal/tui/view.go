package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the calculator screen. The tip is recomputed from the
// current field contents on every render.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("Calculate Tip"),
		m.renderField("Bill Amount", m.amount.View(), m.focus == fieldAmount),
		m.renderField("Tip Percentage", m.tipPercent.View(), m.focus == fieldTipPercent),
		m.renderSwitch(),
		resultStyle.Render(fmt.Sprintf("Tip Amount: %s", m.Result().Text)),
		helpStyle.Render(m.help.View(m.keys)),
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderField(label, input string, focused bool) string {
	labelS, boxS := labelStyle, fieldStyle
	if focused {
		labelS, boxS = focusedLabelStyle, focusedFieldStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, labelS.Render(label), boxS.Render(input))
}

func (m Model) renderSwitch() string {
	label := labelStyle.Render("Round up tip?")
	if m.focus == fieldRoundUp {
		label = focusedLabelStyle.Render("Round up tip?")
	}

	state := switchOffStyle.Render("○ off")
	if m.roundUp {
		state = switchOnStyle.Render("● on")
	}

	gap := fieldWidth + 4 - lipgloss.Width(label) - lipgloss.Width(state)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, strings.Repeat(" ", gap), state)
}
