package cmd

import (
	"github.com/huangsam/mktcalc/internal/logger"
	"github.com/huangsam/mktcalc/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the metric catalog and evaluator over HTTP",
	Long: `Start a JSON HTTP API with these routes:
- GET  /healthz
- GET  /v1/metrics?group=common
- GET  /v1/metrics/{id}
- POST /v1/metrics/{id}/evaluate   body: {"values": {...}}
- POST /v1/batch                   body: {"requests": [...]}
- GET  /metrics                    Prometheus exposition

The server stops gracefully on SIGINT or SIGTERM.

Examples:
  mktcalc serve --addr :9090 --log-level debug`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		log, err := logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return server.New(evaluator, log, nil, cfg.Workers).Run(rootCtx, cfg.Addr)
	},
}
