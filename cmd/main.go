package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/config"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/handler"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/health"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/osc"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/pco"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/repository"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/resultrecorder"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/settings"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/observability/logging"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/observability/metrics"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/observability/middleware"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/service/snapshot"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/service/transmit"
)

// Version is set via ldflags at build time
var Version = "dev"

const moduleName = logging.Module("snapshot-builder")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg.LogLevel)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateSettingsPath(cfg.SettingsPath); err != nil {
		slog.Error("settings path error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	snapshotMetrics, err := metrics.NewSnapshotMetrics()
	if err != nil {
		slog.Error("failed to initialize snapshot metrics", slog.String("error", err.Error()))
		return 1
	}

	// Send-run summaries go to InfluxDB locally and BigQuery on gcloud
	recorderCfg := resultrecorder.LoadConfig()
	recorder, err := resultrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize transmission recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close transmission recorder", slog.String("error", err.Error()))
		}
	}()

	redisClient := redis.NewClient(cfg.Redis.Options())

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	planRepo := repository.NewSnapshotPlanRepository(redisClient, cfg.PlanTTL)
	settingsStore := settings.NewStore(cfg.SettingsPath)
	pcoClient := pco.NewClient(cfg.PCO.BaseURL, cfg.PCO.Timeout, cfg.PCO.Location)

	snapshotService := snapshot.NewService(snapshot.NewBuilder(), planRepo, snapshotMetrics)

	transport := transmit.NewRetryingTransport(
		osc.NewTransport(osc.Config{MessageInterval: cfg.OSC.MessageInterval}),
		cfg.OSC.MaxAttempts,
		cfg.OSC.RetryBackoff,
	)
	coordinator := transmit.NewCoordinator(transport, recorder, snapshotMetrics)
	registry := transmit.NewRegistry(cfg.OperationRetention)

	handlers := handler.Handlers{
		Settings:     handler.NewSettingsHandler(settingsStore),
		PCO:          handler.NewPCOHandler(pcoClient, settingsStore),
		Snapshot:     handler.NewSnapshotHandler(snapshotService, pcoClient, settingsStore, registry),
		Transmission: handler.NewTransmissionHandler(coordinator, snapshotService, registry),
	}

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      moduleName,
		TracerName:  "github.com/KasumiMercury/digico-snapshot-builder/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, Version).
		WithCheck("settings", func(ctx context.Context) error {
			_, err := settingsStore.Load(ctx)
			return err
		})
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	handlers.Register(r.Group("/api/v1"))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("settings_path", cfg.SettingsPath),
			slog.String("plan_timezone", cfg.PCO.Timezone),
			slog.Duration("osc_message_interval", cfg.OSC.MessageInterval),
			slog.Int("osc_send_max_attempts", cfg.OSC.MaxAttempts),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
