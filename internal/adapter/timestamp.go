package adapter

import (
	"context"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// TimestampAuthority defines the external time-attestation collaborator
//
//go:generate mockgen -source=timestamp.go -destination=../mocks/timestamp.go -package=mocks -mock_names=TimestampAuthority=MockTimestampAuthority
type TimestampAuthority interface {
	// AttestTime returns a trusted timestamp bound to the given digest
	AttestTime(ctx context.Context, digest string) (*domain.Attestation, error)
}
