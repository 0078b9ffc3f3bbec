package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the calculator screen and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}

	_, err := tea.NewProgram(NewModel(opts), programOpts...).Run()
	return err
}
