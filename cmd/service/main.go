// Package main is the entry point for the quote vote service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-vote-service/internal/adapters/store"
	"github.com/jsamuelsen/quote-vote-service/internal/app"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("database_driver", cfg.Database.Driver),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	ledgerMetrics, err := telemetry.NewLedgerMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering ledger metrics: %w", err)
	}

	db, err := store.Open(ctx, &store.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		PingTimeout:     cfg.Database.PingTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("closing store", slog.Any("error", closeErr))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}

	healthRegistry := ports.NewHealthRegistry(cfg.Database.PingTimeout)
	if err := healthRegistry.Register(db); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	voteService := app.NewVoteService(app.VoteServiceConfig{
		Store:   db,
		Metrics: ledgerMetrics,
		Logger:  logger,
	})
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: db,
		Logger:     logger,
	})
	statsService := app.NewStatsService(app.StatsServiceConfig{
		Store:    db,
		TopLimit: cfg.Stats.TopLimit,
		Logger:   logger,
	})

	server := http.New(&cfg.Server, logger)

	serviceName := ""
	if cfg.Telemetry.Enabled {
		serviceName = cfg.Telemetry.ServiceName
	}

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AuthConfig:    &cfg.Auth,
		ServiceName:   serviceName,
		Timeout:       cfg.Server.RequestTimeout,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime).WithStore(db.Driver())),
		VoteHandler:   handlers.NewVoteHandler(voteService),
		QuoteHandler:  handlers.NewQuoteHandler(quoteService),
		StatsHandler:  handlers.NewStatsHandler(statsService),
	})

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
