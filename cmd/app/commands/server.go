package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/serials/internal/app"
	"github.com/allisson/serials/internal/config"
)

const shutdownTimeout = 30 * time.Second

// server is the lifecycle shared by the API and metrics listeners.
type server interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer serves the API, plus the metrics listener when enabled, until
// SIGINT/SIGTERM or until one listener fails. Both are then drained within
// shutdownTimeout.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	logger.Info("starting server", slog.String("version", version))

	apiServer, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	servers := map[string]server{"api": apiServer}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers["metrics"] = metricsServer
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, logger, servers)
}

// serve starts every server and shuts all of them down once ctx is done or any
// Start returns an error.
func serve(ctx context.Context, logger *slog.Logger, servers map[string]server) error {
	g, gctx := errgroup.WithContext(ctx)

	for name, srv := range servers {
		g.Go(func() error {
			if err := srv.Start(gctx); err != nil {
				return fmt.Errorf("%s server error: %w", name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for name, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("%s server shutdown: %w", name, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
