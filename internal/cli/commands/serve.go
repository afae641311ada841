package commands

import (
	"os/signal"
	"syscall"

	"github.com/edgewise-labs/rulewizard/internal/config"
	"github.com/edgewise-labs/rulewizard/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the console HTTP API",
		Long: `Start the HTTP API the console frontend compiles rules against.

Endpoints:
  POST /api/v1/rules/compile   compile a wizard state to SQL
  GET  /healthz                liveness check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Config{
				Port:   cfg.Port,
				Logger: logger,
			})
			return srv.Serve(ctx)
		},
	}
}
