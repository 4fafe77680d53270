package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xDarkicex/circuitsim/engine"
	"github.com/xDarkicex/circuitsim/examples"
)

func newDemoCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build and settle one of the bundled example circuits",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, label, err := buildDemo(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s settled:\n", label)
			printComponents(cmd, c)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "circuit", "not-chain", "one of: not-chain, counter, sr-latch")
	return cmd
}

func buildDemo(name string) (*engine.Circuit, string, error) {
	switch name {
	case "not-chain":
		c, _, err := examples.FeedbackNotChain()
		return c, "feedback NOT chain", err
	case "counter":
		c, _, _, _, err := examples.AsyncTwoBitCounter()
		return c, "asynchronous two-bit counter", err
	case "sr-latch":
		c, _, _, _, _, err := examples.SRLatch()
		return c, "cross-coupled NAND SR latch", err
	default:
		return nil, "", fmt.Errorf("unknown demo circuit %q (want not-chain, counter, or sr-latch)", name)
	}
}

func printComponents(cmd *cobra.Command, c *engine.Circuit) {
	for _, inst := range c.Components() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", inst)
	}
}
