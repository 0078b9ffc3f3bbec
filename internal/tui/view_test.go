package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewRendersForm(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.amount.SetValue("10")
	m.tipPercent.SetValue("20")

	view := m.View()
	require.Contains(t, view, "Calculate Tip")
	require.Contains(t, view, "Bill Amount")
	require.Contains(t, view, "Tip Percentage")
	require.Contains(t, view, "Round up tip?")
	require.Contains(t, view, "Tip Amount: $2.00")
	require.Contains(t, view, "○ off")
}

func TestViewReflectsRoundUp(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.amount.SetValue("10")
	m.tipPercent.SetValue("15")
	m.roundUp = true

	view := m.View()
	require.Contains(t, view, "● on")
	require.Contains(t, view, "Tip Amount: $2.00")
}

func TestViewIsEmptyAfterQuit(t *testing.T) {
	t.Parallel()

	updated, _ := newTestModel(t).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Empty(t, updated.(Model).View())
}
