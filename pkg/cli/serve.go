package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/secmon-lab/vaxbook/pkg/cli/config"
	controller "github.com/secmon-lab/vaxbook/pkg/controller/http"
	"github.com/secmon-lab/vaxbook/pkg/usecase"
	"github.com/secmon-lab/vaxbook/pkg/utils/apperr"
	"github.com/secmon-lab/vaxbook/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		backendCfg   config.Backend
		firestoreCfg config.Firestore
		rosterCfg    config.Roster
	)

	flags := joinFlags(
		serverCfg.Flags(),
		backendCfg.Flags(),
		firestoreCfg.Flags(),
		rosterCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting vaxbook server",
				slog.Any("server", serverCfg),
				slog.Any("backend", backendCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("roster", rosterCfg),
			)

			reg := prometheus.NewRegistry()
			backendMetrics, err := metrics.NewBackend(reg)
			if err != nil {
				return goerr.Wrap(err, "failed to register metrics")
			}

			backendClient, err := backendCfg.Configure(backendMetrics)
			if err != nil {
				return err
			}

			roster, err := rosterCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					apperr.Handle(ctx, goerr.Wrap(err, "failed to close repository"))
				}
			}()

			// Create use cases
			useCases := controller.NewUseCases(
				usecase.NewAuth(ctx, repo, backendClient, usecase.WithSessionDuration(serverCfg.SessionDuration)),
				usecase.NewCombo(backendClient, backendMetrics),
				usecase.NewSchedule(roster),
				usecase.NewChild(backendClient, backendMetrics),
			)

			server, err := controller.NewServer(
				ctx,
				controller.NewConfig(serverCfg.Addr, !serverCfg.InsecureCookie),
				useCases,
				backendMetrics.Handler(),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					apperr.Handle(ctx, goerr.Wrap(err, "HTTP server error"))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
