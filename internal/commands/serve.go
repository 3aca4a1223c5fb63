package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgertree/internal/server"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the hierarchy over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, root.repoDir)
			if err != nil {
				return err
			}
			defer a.close()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv := server.New(a.ws, a.log, promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
