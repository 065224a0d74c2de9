package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/config"
	"github.com/origin-platform/rights-ledger/internal/governance"
	"github.com/origin-platform/rights-ledger/internal/identity"
	"github.com/origin-platform/rights-ledger/internal/logger"
	"github.com/origin-platform/rights-ledger/internal/providers/identityhttp"
	"github.com/origin-platform/rights-ledger/internal/providers/jetstream"
	"github.com/origin-platform/rights-ledger/internal/store"
	"github.com/origin-platform/rights-ledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Rights Ledger sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Connect to NATS JetStream for resolution events
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	if closer, ok := publisher.(interface{ Close() }); ok {
		defer closer.Close()
	}
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// The tally only resolves proposals here; voting power is read fresh from
	// the identity service and vetoes never go through the sweeper.
	votingPower := identityhttp.NewClient(identityhttp.Config{BaseURL: cfg.Governance.IdentityURL})
	founders := identity.NewStaticFounderVerifier(nil)
	tally := governance.NewTally(dataStore, clock, publisher, votingPower, founders,
		cfg.Governance.WeightCapBps, cfg.Governance.QuorumFraction)

	settlementSweeper := sweeper.NewSettlementSweeper(&sweeper.SettlementSweeperConfig{
		BatchSize:     cfg.BatchSize,
		CycleInterval: cfg.SweepEvery,
	}, dataStore, clock)
	governanceSweeper := sweeper.NewGovernanceSweeper(&sweeper.GovernanceSweeperConfig{
		CycleInterval: cfg.SweepEvery,
	}, tally, clock)

	logger.InfoCtx(ctx, "Initialized sweepers",
		zap.Int("batch_size", cfg.BatchSize),
		zap.Duration("sweep_every", cfg.SweepEvery),
	)

	runner := sweeper.NewRunner(settlementSweeper, governanceSweeper)
	errCh := runner.Start(ctx)

	// Wait for interrupt signal or sweeper failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}

	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := runner.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
