package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/circuitsim/engine"
	"github.com/xDarkicex/circuitsim/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST facade over an empty, powered-on circuit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := mustConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.HTTPAddr
			}
			log := newLogger(cfg)

			c := engine.New(engine.WithPropagationLimit(cfg.PropagationLimit), engine.WithLogger(log))
			if err := c.PowerOn(); err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			server.New(c, log).Routes(r)

			log.Info().Str("addr", addr).Msg("circuitsim REST facade listening")
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return r.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
