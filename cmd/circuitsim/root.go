package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/circuitsim/config"
	"github.com/xDarkicex/circuitsim/core"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "circuitsim",
		Short: "Digital logic circuit simulator",
		Long:  "circuitsim wires, powers on, and drives gate-level circuits through a single synchronous facade.",
	}

	root.AddCommand(newDemoCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newTUICmd())

	return root
}

// mustConfig resolves configuration for the subcommands that use it
// (table, serve): defaults, circuitsim.yaml, then CIRCUITSIM_* env
// overrides.
func mustConfig() (*config.Config, error) {
	return config.Load()
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return core.NewLogger(cfg.LogLevel, cfg.LogFormat, nil)
}
