package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/web3sanitizer/pkg/api"
	"github.com/dmitrymomot/web3sanitizer/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sanitizer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := api.New(a.san,
				api.WithLogger(a.log),
				api.WithFailOpen(a.cfg.FailOpen),
			)
			srv := httpserver.NewFromConfig(a.cfg.HTTP,
				httpserver.WithAddr(addr),
				httpserver.WithLogger(a.log),
			)
			return srv.Run(ctx, h.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
