package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tiptime/internal/logger"
	"github.com/alexisbeaulieu97/tiptime/internal/tip"
)

// field identifies the control holding keyboard focus.
type field int

const (
	fieldAmount field = iota
	fieldTipPercent
	fieldRoundUp
	fieldNone
)

func (f field) String() string {
	switch f {
	case fieldAmount:
		return "amount"
	case fieldTipPercent:
		return "tip_percent"
	case fieldRoundUp:
		return "round_up"
	default:
		return "none"
	}
}

// Options configures a new Model.
type Options struct {
	Calculator *tip.Calculator
	Logger     *logger.Logger
	// DefaultTipPercent is shown as the tip field's placeholder.
	DefaultTipPercent float64
}

// Model contains the Bubbletea state for the tip calculator screen.
type Model struct {
	calc *tip.Calculator
	log  *logger.Logger

	amount     textinput.Model
	tipPercent textinput.Model
	roundUp    bool
	focus      field

	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel constructs the calculator screen with the bill amount focused.
func NewModel(opts Options) Model {
	calc := opts.Calculator
	if calc == nil {
		calc = tip.Default()
	}

	amount := newNumberInput("0.00")
	tipPercent := newNumberInput(strconv.FormatFloat(opts.DefaultTipPercent, 'f', -1, 64))

	m := Model{
		calc:       calc,
		log:        opts.Logger,
		amount:     amount,
		tipPercent: tipPercent,
		focus:      fieldNone,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m, _ = m.setFocus(fieldAmount)
	return m
}

func newNumberInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = 24
	input.Width = fieldWidth - 2
	return input
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result computes the tip for the current field contents. Unparsable text
// counts as zero.
func (m Model) Result() tip.Result {
	return m.calc.Compute(tip.Request{
		Amount:     tip.ParseInput(m.amount.Value()),
		TipPercent: tip.ParseInput(m.tipPercent.Value()),
		RoundUp:    m.roundUp,
	})
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) setFocus(target field) (Model, tea.Cmd) {
	m.amount.Blur()
	m.tipPercent.Blur()
	m.focus = target

	var cmd tea.Cmd
	switch target {
	case fieldAmount:
		cmd = m.amount.Focus()
	case fieldTipPercent:
		cmd = m.tipPercent.Focus()
	}
	return m, cmd
}

func (m Model) editing() bool {
	return m.focus == fieldAmount || m.focus == fieldTipPercent
}
