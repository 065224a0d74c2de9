package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/logger"
	"github.com/origin-platform/rights-ledger/internal/store"
)

// SettlementSweeperConfig holds configuration for the settlement sweeper
type SettlementSweeperConfig struct {
	BatchSize     int           // Ledger entries to settle per batch
	CycleInterval time.Duration // Time to sleep between sweep cycles
}

// settlementSweeper moves value of due ledger entries from pending to
// available. Each batch is one store transaction; entries are flagged
// settled, so interrupted or repeated cycles never double-credit.
type settlementSweeper struct {
	config    *SettlementSweeperConfig
	store     store.Store
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewSettlementSweeper creates a new settlement sweeper
func NewSettlementSweeper(config *SettlementSweeperConfig, st store.Store, clock adapter.Clock) Sweeper {
	return &settlementSweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *settlementSweeper) Name() string {
	return "settlement-sweeper"
}

// Start begins the sweeper's main loop
func (s *settlementSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting settlement sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Duration("cycle_interval", s.config.CycleInterval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Settlement sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Settlement sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *settlementSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping settlement sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Settlement sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Settlement sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle settles every currently-due entry, batch by batch, then
// sleeps until the next cycle
func (s *settlementSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	var entries int
	var amount int64

	for {
		result, err := s.settleBatchWithRetry(ctx)
		if err != nil {
			return err
		}

		entries += result.EntriesSettled
		amount += result.AmountSettled

		// A short batch means the due backlog is drained
		if result.EntriesSettled < s.config.BatchSize {
			break
		}
	}

	if entries > 0 {
		logger.InfoCtx(ctx, "Settlement cycle completed",
			zap.Int("entries_settled", entries),
			zap.Int64("amount_settled", amount),
			zap.Duration("duration", s.clock.Since(startTime)),
		)
	}

	if !s.sleep(ctx, s.config.CycleInterval) {
		return ctx.Err()
	}
	return nil
}

// settleBatchWithRetry runs one settlement batch, retrying transient store
// errors with exponential backoff
func (s *settlementSweeper) settleBatchWithRetry(ctx context.Context) (*store.SettlementResult, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = 1 * time.Minute
	b.MaxElapsedTime = 10 * time.Minute
	b.RandomizationFactor = 0.5

	var result *store.SettlementResult
	var attemptCount int

	operation := func() error {
		var err error
		result, err = s.store.SettleDueEntries(ctx, s.clock.Now(), s.config.BatchSize)
		return err
	}
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Settlement batch failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError)
	if err != nil {
		return nil, fmt.Errorf("settlement batch failed after %d attempts: %w", attemptCount, err)
	}
	return result, nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request
func (s *settlementSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
