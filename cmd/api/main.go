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
	"github.com/origin-platform/rights-ledger/internal/api/middleware"
	"github.com/origin-platform/rights-ledger/internal/api/rest"
	"github.com/origin-platform/rights-ledger/internal/api/server"
	"github.com/origin-platform/rights-ledger/internal/certificate"
	"github.com/origin-platform/rights-ledger/internal/config"
	"github.com/origin-platform/rights-ledger/internal/fingerprint"
	"github.com/origin-platform/rights-ledger/internal/governance"
	"github.com/origin-platform/rights-ledger/internal/identity"
	"github.com/origin-platform/rights-ledger/internal/logger"
	"github.com/origin-platform/rights-ledger/internal/payout"
	"github.com/origin-platform/rights-ledger/internal/providers/ethereum"
	"github.com/origin-platform/rights-ledger/internal/providers/identityhttp"
	"github.com/origin-platform/rights-ledger/internal/providers/jetstream"
	"github.com/origin-platform/rights-ledger/internal/providers/timestamp"
	"github.com/origin-platform/rights-ledger/internal/ratelimit"
	"github.com/origin-platform/rights-ledger/internal/revenue"
	"github.com/origin-platform/rights-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Rights Ledger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Connect to NATS JetStream
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

	// External collaborators, all routed through the rate limit proxy
	limiter, err := ratelimit.NewProxy(cfg.RateLimit)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		if err := limiter.Close(); err != nil {
			logger.Warn("Failed to close rate limit proxy", zap.Error(err))
		}
	}()

	ethClient, err := ethereum.NewClient(ethereum.Config{
		RPCURL:        cfg.Anchor.RPCURL,
		ChainName:     cfg.Anchor.ChainName,
		PrivateKeyHex: cfg.Anchor.PrivateKey,
		GasLimit:      cfg.Anchor.GasLimit,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create anchor client", zap.Error(err))
	}
	anchorClient := ratelimit.WrapAnchorClient(limiter, ethClient)
	timestamper := ratelimit.WrapTimestampAuthority(limiter, timestamp.NewClient(timestamp.Config{
		URL:       cfg.Anchor.TimestampURL,
		Authority: cfg.Anchor.TimestampAuthority,
		Timeout:   cfg.Anchor.CollaboratorWait,
	}))
	votingPower := ratelimit.WrapVotingPowerSource(limiter, identityhttp.NewClient(identityhttp.Config{
		BaseURL: cfg.Governance.IdentityURL,
	}))
	founders := identity.NewStaticFounderVerifier(cfg.Auth.FounderIDs)

	// Core services
	registrar := fingerprint.NewRegistrar(fingerprint.New(cfg.Ledger.MaxContentSize), dataStore, clock)
	issuer := certificate.NewIssuer(dataStore, clock, timestamper, anchorClient, publisher,
		cfg.Ledger.CertificateValidity, cfg.Anchor.CollaboratorWait)
	engine := revenue.NewEngine(dataStore, clock, publisher, cfg.Ledger.SettlementDelay)
	ledger := payout.NewLedger(dataStore, clock, publisher, cfg.Ledger.WithdrawalMinimum)
	tally := governance.NewTally(dataStore, clock, publisher, votingPower, founders,
		cfg.Governance.WeightCapBps, cfg.Governance.QuorumFraction)

	handler := rest.NewHandler(registrar, issuer, engine, ledger, tally)

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey:  cfg.Auth.JWTPublicKey,
			APIKeys:       cfg.Auth.APIKeys,
			WebhookSecret: cfg.Auth.WebhookSecret,
		},
	}, handler)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
