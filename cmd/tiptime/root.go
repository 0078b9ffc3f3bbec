package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := newAppContext(flags)

	cmd := &cobra.Command{
		Use:           "tiptime",
		Short:         "Tiptime works out the tip on a bill",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the calculator when a person is watching.
			if len(args) == 0 && isTerminal() {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default ~/.tiptime/config.yaml)")

	cmd.AddCommand(newCalcCmd(app))
	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
