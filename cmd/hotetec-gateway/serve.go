package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ozzus/hotetec-gateway/httpapp"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/tracing"
	httpapi "github.com/ozzus/hotetec-gateway/internal/transport/http"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log := rt.cfg, rt.log

			tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, tracing.Options{
				Enabled:     cfg.Tracing.Enabled,
				PrettyPrint: cfg.Tracing.PrettyPrint,
			})
			if err != nil {
				return err
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					log.Warn("failed to shutdown tracer provider", zap.Error(err))
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := buildApplication(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()

			log.Info("hotetec-gateway starting",
				zap.String("env", cfg.Env),
				zap.String("http_addr", cfg.HTTP.Address()),
				zap.String("endpoint", cfg.Hotetec.Endpoint),
				zap.Bool("redis", cfg.Redis.Enabled()),
				zap.Bool("ledger", cfg.DB.Enabled()),
			)

			server := httpapp.New(log, cfg.HTTP.Address(),
				httpapi.NewRouter(log, app.service, app.metrics.Handler()),
				httpapp.Options{
					ReadTimeout:     cfg.HTTP.ReadTimeout,
					WriteTimeout:    cfg.HTTP.WriteTimeout,
					ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
				},
			)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Run()
			}()

			select {
			case <-ctx.Done():
				log.Info("shutdown signal received")
				server.Stop()
				return nil
			case err := <-errCh:
				if err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
				return err
			}
		},
	}
}
