package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Aidin1998/hello-service/api"
	"github.com/Aidin1998/hello-service/internal/config"
	"github.com/Aidin1998/hello-service/internal/telemetry"
	"github.com/Aidin1998/hello-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var serveCmd = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.StringSlice("config")...)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to load configuration: %w", err), 1)
	}

	zapLogger, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create logger: %w", err), 1)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Configuration loaded",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
		zap.Strings("files", cfg.Files))

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Tracing: cfg.Telemetry.Tracing,
		Metrics: cfg.Telemetry.Metrics,
	})
	if err != nil {
		zapLogger.Error("Failed to set up telemetry", zap.Error(err))
		return cli.Exit(err, 1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			zapLogger.Error("Failed to flush telemetry", zap.Error(err))
		}
	}()

	apiServer := api.NewServer(zapLogger, cfg)
	if err := apiServer.Start(ctx); err != nil {
		zapLogger.Error("API server failed", zap.Error(err))
		return cli.Exit(err, 1)
	}

	zapLogger.Info("Server exited properly")
	return nil
}
