package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"agrimoga/internal/catalog"
	"agrimoga/internal/config"
	"agrimoga/internal/handlers"
	"agrimoga/internal/logger"
	"agrimoga/internal/metrics"
	"agrimoga/internal/publisher"
	"agrimoga/internal/repository"
	"agrimoga/internal/repository/db"
	"agrimoga/internal/server"
	"agrimoga/internal/service"
	"agrimoga/internal/weather"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(cfgDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the background weather refresh",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(*cfgDir)
		},
	}
}

func runServe(cfgDir string) error {
	cfg, err := config.Load(cfgDir)
	if err != nil {
		return err
	}
	log := logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.Open(cfg.DBOptions())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("db_close_failed", "err", cerr)
		}
	}()

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewCollector(cfg.Metrics.Namespace, reg)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// a missing broker only disables publishing
	pub, err := publisher.New(ctx, cfg.MQTT, log, m)
	if err != nil {
		log.Warnw("mqtt_disabled", "broker", cfg.MQTT.Broker, "err", err)
		pub = publisher.Nop{}
	}
	defer pub.Close()

	wx := weather.NewClient(cfg.WeatherClient())
	if !wx.HasAPIKey() {
		log.Warnw("weather_api_key_missing", "hint", "set AGRIMOGA_WEATHER_API_KEY")
	}

	services := service.NewService(service.Deps{
		Repos:     repository.NewRepository(sqlDB, m),
		Catalog:   cat,
		Weather:   wx,
		Publisher: pub,
		Metrics:   m,
		Log:       log,
		Config:    cfg.Services(),
	})
	apiHandler := handlers.NewHandler(services, log, m, reg)

	go services.Refresher.Run(ctx, cfg.Weather.RefreshInterval)

	srv := server.New(cfg.HTTP.WriteTimeout)
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server_started", "port", cfg.Port, "db_driver", cfg.DB.Driver, "log_cap", cfg.LogCap)

	return waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
