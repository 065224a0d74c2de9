package sweeper

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/origin-platform/rights-ledger/internal/logger"
)

// Runner supervises a set of sweepers on a shared worker pool. Each sweeper
// gets its own long-lived worker; stopping the runner stops every sweeper and
// waits for in-progress cycles to finish.
type Runner struct {
	sweepers []Sweeper
	pool     pond.Pool
}

// NewRunner creates a runner over the given sweepers
func NewRunner(sweepers ...Sweeper) *Runner {
	return &Runner{sweepers: sweepers}
}

// Start launches every sweeper. Non-blocking; sweeper failures surface on
// the returned channel.
func (r *Runner) Start(ctx context.Context) <-chan error {
	errCh := make(chan error, len(r.sweepers))
	r.pool = pond.NewPool(len(r.sweepers), pond.WithContext(ctx))

	for _, s := range r.sweepers {
		r.pool.Submit(func() {
			logger.InfoCtx(ctx, "Launching sweeper", zap.String("sweeper", s.Name()))
			if err := s.Start(ctx); err != nil {
				errCh <- fmt.Errorf("sweeper %s failed: %w", s.Name(), err)
			}
		})
	}

	return errCh
}

// Stop stops every sweeper and waits for the pool to drain
func (r *Runner) Stop(ctx context.Context) error {
	var firstErr error
	for _, s := range r.sweepers {
		if err := s.Stop(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if r.pool != nil {
		r.pool.StopAndWait()
	}
	return firstErr
}
