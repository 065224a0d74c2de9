package adapter

import (
	"context"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// AnchorClient defines the external ledger-anchor collaborator. The core
// depends only on the contract (bounded latency, tamper-evident output), so
// any compliant chain client can be substituted.
//
//go:generate mockgen -source=anchor.go -destination=../mocks/anchor.go -package=mocks -mock_names=AnchorClient=MockAnchorClient
type AnchorClient interface {
	// Anchor records the given content hash on the external ledger and
	// returns the chain identifier and transaction reference
	Anchor(ctx context.Context, contentHash string) (*domain.AnchorRef, error)
}
