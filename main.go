package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"receipt/config"
	"receipt/di"
	"receipt/driver/receipt_db"
	"receipt/job"
	"receipt/rest"
	"receipt/utils/logger"
	"receipt/utils/otel"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := otel.InitProvider(ctx, otelConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize OpenTelemetry: %v\n", err)
		cfg.OTel.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	log := logger.InitLogger(logger.Options{
		Level:       cfg.Logging.Level,
		ServiceName: cfg.OTel.ServiceName,
		OTelEnabled: cfg.OTel.Enabled,
	})
	log.Info("Starting receipt service", "port", cfg.Server.Port)

	pool, err := receipt_db.InitDBConnectionPool(ctx, cfg.Database)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	lockDriver, err := di.NewLockDriver(ctx, cfg.Redis)
	if err != nil {
		log.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if lockDriver != nil {
		defer lockDriver.Close()
		log.Info("Using redis report locks")
	}

	container := di.NewApplicationComponents(pool, lockDriver, cfg)

	scheduler := job.NewJobScheduler()
	if cfg.Weekly.JobEnabled {
		scheduler.Add(job.Job{
			Name:     "weekly-receipt",
			Interval: cfg.Weekly.JobInterval,
			Timeout:  cfg.Weekly.JobTimeout,
			Fn:       container.WeeklyReceiptJob.Run,
		})
	}
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if cfg.OTel.Enabled {
		e.Use(otelecho.Middleware(cfg.OTel.ServiceName))
	}
	rest.RegisterRoutes(e, container, cfg)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	go func() {
		address := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("HTTP server listening", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	scheduler.Shutdown()
	log.Info("Server exited properly")
}

func otelConfig(cfg *config.Config) otel.Config {
	return otel.Config{
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.OTel.ServiceVersion,
		Environment:    cfg.OTel.Environment,
		OTLPEndpoint:   cfg.OTel.Endpoint,
		Enabled:        cfg.OTel.Enabled,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
}
