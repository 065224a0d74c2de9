package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/governance"
	"github.com/origin-platform/rights-ledger/internal/logger"
)

// GovernanceSweeperConfig holds configuration for the governance sweeper
type GovernanceSweeperConfig struct {
	CycleInterval time.Duration // Time to sleep between sweep cycles
}

// governanceSweeper resolves proposals whose voting deadline has passed.
// Resolution runs through the tally service so quorum evaluation and event
// emission stay in one place.
type governanceSweeper struct {
	config    *GovernanceSweeperConfig
	tally     *governance.Tally
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewGovernanceSweeper creates a new governance resolution sweeper
func NewGovernanceSweeper(config *GovernanceSweeperConfig, tally *governance.Tally, clock adapter.Clock) Sweeper {
	return &governanceSweeper{
		config:    config,
		tally:     tally,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *governanceSweeper) Name() string {
	return "governance-sweeper"
}

// Start begins the sweeper's main loop
func (s *governanceSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting governance sweeper",
		zap.Duration("cycle_interval", s.config.CycleInterval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Governance sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Governance sweeper stop requested")
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
func (s *governanceSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping governance sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Governance sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Governance sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle resolves all due proposals then sleeps until the next cycle
func (s *governanceSweeper) runSweepCycle(ctx context.Context) error {
	resolved, err := s.tally.ResolveDue(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve due proposals: %w", err)
	}

	for _, proposal := range resolved {
		logger.InfoCtx(ctx, "Proposal resolved",
			zap.String("proposal_id", proposal.ProposalID),
			zap.String("status", string(proposal.Status)),
			zap.Int64("yes_weight", proposal.YesWeight),
			zap.Int64("no_weight", proposal.NoWeight),
		)
	}

	if !s.sleep(ctx, s.config.CycleInterval) {
		return ctx.Err()
	}
	return nil
}

func (s *governanceSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
