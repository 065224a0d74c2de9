package sweeper

import (
	"context"
)

// Sweeper is a periodic background task over the ledger. The binary runs one
// for payout settlement and one for proposal resolution.
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweep loop, blocking until the context is canceled
	Start(ctx context.Context) error

	// Stop shuts the loop down, waiting for an in-progress cycle to finish
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
