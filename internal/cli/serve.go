package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/orderpad/orderpad/internal/config"
	"github.com/orderpad/orderpad/internal/server"
	"github.com/orderpad/orderpad/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run a local stand-in for the remote order API",
		Long: "Serves GET /products.php and POST /save.php locally, for development\n" +
			"against a catalog that behaves like the real collaborator.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			log := logger.New(cfg.LogLevel)
			slog.SetDefault(log)

			log.Info("starting local order API",
				"host", cfg.Server.Host,
				"port", cfg.Server.Port,
				"auth_enabled", len(cfg.Server.APIKeys) > 0,
			)

			return server.New(cfg.Server, log).Run()
		},
	}
}
