package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sorotlabs/sorot/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP extraction service",
	Long: `Starts the HTTP API for video metadata extraction.

Example:
  sorot serve
  sorot serve --config config.yaml
  LISTEN_ADDR=:9000 sorot serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(
			cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, proc := buildServices(ctx, settings, logger)
		handler := server.NewHandler(svc, proc, server.Limits{
			MaxURLsPerBatch:    settings.MaxURLsPerBatch,
			RateLimitPerMinute: settings.MaxRequestsPerMinute,
			MaxVideoDuration:   settings.MaxVideoDuration,
		}, logger)

		srv := server.New(settings.ListenAddr, server.RouterConfig{
			Handler: handler,
			APIKey:  settings.APIKey,
		}, logger)

		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
