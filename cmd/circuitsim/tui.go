package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/circuitsim/engine"
	"github.com/xDarkicex/circuitsim/internal/tui"
)

func newTUICmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse a demo circuit's components and truth table interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := buildDemo(name)
			if err != nil {
				return err
			}
			return runTUI(c)
		},
	}

	cmd.Flags().StringVar(&name, "circuit", "not-chain", "one of: not-chain, counter, sr-latch")
	return cmd
}

func runTUI(c *engine.Circuit) error {
	p := tea.NewProgram(tui.New(c))
	_, err := p.Run()
	return err
}
