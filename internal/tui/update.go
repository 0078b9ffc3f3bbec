package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Leave) && !m.editing():
		return m.quit()
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.next())
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.prev())
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Toggle) && m.focus == fieldRoundUp:
		return m.toggleRoundUp(), nil
	}

	return m.updateInputs(msg)
}

// submit mirrors the keyboard actions of the two text fields: the bill amount
// moves on to the tip, the tip field finishes editing.
func (m Model) submit() (tea.Model, tea.Cmd) {
	switch m.focus {
	case fieldAmount:
		return m.setFocus(fieldTipPercent)
	case fieldTipPercent:
		m.log.With("tip", m.Result().Text).Debug("tip entry done")
		return m.setFocus(fieldNone)
	case fieldRoundUp:
		return m.toggleRoundUp(), nil
	}
	return m, nil
}

func (m Model) toggleRoundUp() Model {
	m.roundUp = !m.roundUp
	m.log.With("round_up", m.roundUp).Debug("round up toggled")
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.log.WithFields(map[string]any{
		"tip":      m.Result().Text,
		"round_up": m.roundUp,
	}).Info("calculator closed")
	return m, tea.Quit
}

func (m Model) next() field {
	if m.focus >= fieldRoundUp {
		return fieldAmount
	}
	return m.focus + 1
}

func (m Model) prev() field {
	if m.focus == fieldAmount || m.focus == fieldNone {
		return fieldRoundUp
	}
	return m.focus - 1
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds [2]tea.Cmd
	m.amount, cmds[0] = m.amount.Update(msg)
	m.tipPercent, cmds[1] = m.tipPercent.Update(msg)
	return m, tea.Batch(cmds[:]...)
}
