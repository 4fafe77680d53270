package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xDarkicex/circuitsim/engine"
	"github.com/xDarkicex/circuitsim/minimize"
	"github.com/xDarkicex/circuitsim/parsing"
)

func newTableCmd() *cobra.Command {
	var formula, formulaFile string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Build a circuit from a formula and print its truth table",
		RunE: func(cmd *cobra.Command, args []string) error {
			source := formula
			if formulaFile != "" {
				data, err := os.ReadFile(formulaFile)
				if err != nil {
					return err
				}
				source = string(data)
			}
			if source == "" {
				return fmt.Errorf("table: one of --formula or --formula-file is required")
			}

			cfg, err := mustConfig()
			if err != nil {
				return err
			}

			prog, err := parsing.Parse(source)
			if err != nil {
				return err
			}

			c := engine.New(engine.WithPropagationLimit(cfg.PropagationLimit), engine.WithLogger(newLogger(cfg)))
			for _, name := range parsing.FreeIdentifiers(prog) {
				c.AddInput(name, false)
			}

			assigned, err := parsing.Build(c, source)
			if err != nil {
				return err
			}
			for _, id := range assigned {
				c.TrackOutput(id)
			}
			if err := c.PowerOn(); err != nil {
				return err
			}

			t, err := c.TruthTable()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), engine.RenderBool(t))

			minimized := minimize.Minimize(t, c.DrivingLabels(), c.OutputLabels())
			for name, expr := range minimized {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, expr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formula, "formula", "", `assignment source, e.g. "Y = A.B + !A.!B"`)
	cmd.Flags().StringVar(&formulaFile, "formula-file", "", "path to a file holding the assignment source")
	return cmd
}
