package identity

import (
	"context"
)

// VotingPowerSource resolves governance voting power for an identity. Voting
// power lives outside the ledger core (contribution scores, token holdings),
// so the tally consumes it through this collaborator and never stores roles.
//
//go:generate mockgen -source=identity.go -destination=../mocks/identity.go -package=mocks -mock_names=VotingPowerSource=MockVotingPowerSource,FounderVerifier=MockFounderVerifier
type VotingPowerSource interface {
	// VotingPower returns the current weight of a voter
	VotingPower(ctx context.Context, voterID string) (int64, error)
	// TotalEligibleWeight returns the total weight across all eligible voters,
	// snapshotted by callers at proposal opening
	TotalEligibleWeight(ctx context.Context) (int64, error)
}

// FounderVerifier checks whether an identity holds founder privileges.
// Only founders may veto proposals.
type FounderVerifier interface {
	// IsFounder reports whether the identity is a verified founder
	IsFounder(ctx context.Context, identityID string) (bool, error)
}

// StaticFounderVerifier verifies founders against a fixed configured list
type StaticFounderVerifier struct {
	founders map[string]struct{}
}

// NewStaticFounderVerifier creates a verifier over the configured founder IDs
func NewStaticFounderVerifier(founderIDs []string) *StaticFounderVerifier {
	founders := make(map[string]struct{}, len(founderIDs))
	for _, id := range founderIDs {
		founders[id] = struct{}{}
	}
	return &StaticFounderVerifier{founders: founders}
}

// IsFounder reports whether the identity is on the configured founder list
func (v *StaticFounderVerifier) IsFounder(_ context.Context, identityID string) (bool, error) {
	_, ok := v.founders[identityID]
	return ok, nil
}
