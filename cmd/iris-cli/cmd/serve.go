package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"iris/internal/adapters/httpapi"
	"iris/internal/config"
	"iris/internal/logging"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long: `Serve distance computations over HTTP.

Endpoints:
  GET /api/v1/bodies
  GET /api/v1/distance?body=mars&start=2024-01-01+00:00:00&end=2024-01-02+00:00:00
  GET /api/v1/history?limit=20
  GET /healthz
  GET /metrics

Changes to log_level in the config file are applied without a restart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if components.Cache != nil {
			httpapi.RegisterCacheMetrics(components.Cache)
		}

		if config.FileExists(configPath) {
			changed := changedFlags(cmd.Flags())
			watcher := config.NewWatcher(configPath, func(fc config.FileConfig) {
				reloadLogLevel(fc, changed)
			}, logger)
			go func() {
				if err := watcher.Run(ctx); err != nil {
					logger.Warn().Err(err).Msg("config watcher stopped")
				}
			}()
		}

		srv := httpapi.NewServer(cfg.ListenAddr, components.Engine, components.History, logger)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// reloadLogLevel applies a new log_level unless a flag or the environment
// pinned it.
func reloadLogLevel(fc config.FileConfig, changed map[string]bool) {
	if fc.LogLevel == "" || changed[config.FlagLogLevel] || os.Getenv("IRIS_LOG_LEVEL") != "" {
		return
	}
	if err := logging.SetLevel(fc.LogLevel); err != nil {
		logger.Warn().Err(err).Str("log_level", fc.LogLevel).Msg("ignoring invalid log level")
		return
	}
	logger.Info().Str("log_level", fc.LogLevel).Msg("log level reloaded")
}

func init() {
	serveCmd.Flags().StringVar(&cfg.ListenAddr, config.FlagListenAddr, cfg.ListenAddr, "address to listen on")
	rootCmd.AddCommand(serveCmd)
}
