package governance

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/identity"
	"github.com/origin-platform/rights-ledger/internal/logger"
	"github.com/origin-platform/rights-ledger/internal/messaging"
	"github.com/origin-platform/rights-ledger/internal/store"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

// Tally runs lightweight governance over the mutable-rule allow-list. Voting
// power and founder status live outside the core and come in through the
// identity collaborators.
type Tally struct {
	store          store.Store
	clock          adapter.Clock
	publisher      messaging.Publisher
	votingPower    identity.VotingPowerSource
	founders       identity.FounderVerifier
	weightCapBps   int64
	quorumFraction float64
}

// NewTally creates a governance tally service. weightCapBps caps one voter's
// weight as basis points of the eligible-weight snapshot; quorumFraction is
// the turnout threshold for a proposal to pass.
func NewTally(
	s store.Store,
	clock adapter.Clock,
	publisher messaging.Publisher,
	votingPower identity.VotingPowerSource,
	founders identity.FounderVerifier,
	weightCapBps int64,
	quorumFraction float64,
) *Tally {
	return &Tally{
		store:          s,
		clock:          clock,
		publisher:      publisher,
		votingPower:    votingPower,
		founders:       founders,
		weightCapBps:   weightCapBps,
		quorumFraction: quorumFraction,
	}
}

// CreateProposalInput describes a new proposal
type CreateProposalInput struct {
	CreatorID    string
	Category     domain.ProposalCategory
	Title        string
	Description  string
	VotingPeriod time.Duration
}

// CreateProposal opens a proposal for voting. Categories outside the
// allow-list are rejected up front; base fees, founder revenue, compliance,
// and platform control are never votable. The total eligible weight is
// snapshotted at opening and used for quorum and the per-voter cap.
func (t *Tally) CreateProposal(ctx context.Context, input CreateProposalInput) (*schema.Proposal, error) {
	if !domain.VotableCategory(input.Category) {
		return nil, fmt.Errorf("%w: %s", domain.ErrImmutableRuleViolation, input.Category)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("proposal title is required")
	}
	if input.VotingPeriod <= 0 {
		return nil, fmt.Errorf("voting period must be positive")
	}

	eligible, err := t.votingPower.TotalEligibleWeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot eligible weight: %w", err)
	}

	now := t.clock.Now()
	proposal := &schema.Proposal{
		ProposalID:          ulid.Make().String(),
		CreatorID:           input.CreatorID,
		Category:            input.Category,
		Title:               input.Title,
		Description:         input.Description,
		OpenedAt:            now,
		ClosesAt:            now.Add(input.VotingPeriod),
		TotalEligibleWeight: eligible,
		Status:              domain.ProposalStatusActive,
		CreatedAt:           now,
	}

	if err := t.store.CreateProposal(ctx, proposal); err != nil {
		return nil, err
	}

	return proposal, nil
}

// GetProposal retrieves a proposal by its public ID
func (t *Tally) GetProposal(ctx context.Context, proposalID string) (*schema.Proposal, error) {
	proposal, err := t.store.GetProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, fmt.Errorf("%w: proposal %s", domain.ErrNotFound, proposalID)
	}
	return proposal, nil
}

// ListProposals retrieves proposals in a given status
func (t *Tally) ListProposals(ctx context.Context, status domain.ProposalStatus, limit int) ([]*schema.Proposal, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return t.store.ListProposalsByStatus(ctx, status, limit)
}

// CastVote resolves the voter's current weight and records the vote.
// Re-voting replaces the earlier record and the tallies move by the delta.
func (t *Tally) CastVote(ctx context.Context, proposalID string, voterID string, choice domain.VoteChoice) (*schema.Proposal, error) {
	if !domain.IsValidVoteChoice(choice) {
		return nil, fmt.Errorf("invalid vote choice: %s", choice)
	}

	weight, err := t.votingPower.VotingPower(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve voting power: %w", err)
	}
	if weight <= 0 {
		return nil, fmt.Errorf("voter %s has no voting power", voterID)
	}

	return t.store.CastVote(ctx, store.CastVoteInput{
		ProposalID:   proposalID,
		VoterID:      voterID,
		Choice:       choice,
		Weight:       weight,
		WeightCapBps: t.weightCapBps,
		CastAt:       t.clock.Now(),
	})
}

// ListVotes retrieves the current votes on a proposal
func (t *Tally) ListVotes(ctx context.Context, proposalID string) ([]*schema.VoteRecord, error) {
	return t.store.ListVotesByProposal(ctx, proposalID)
}

// ResolveDue closes every active proposal past its deadline and emits a
// resolution event per proposal. Safe to re-run; resolved proposals are
// never picked up again.
func (t *Tally) ResolveDue(ctx context.Context) ([]*schema.Proposal, error) {
	resolved, err := t.store.ResolveDueProposals(ctx, t.clock.Now(), t.quorumFraction)
	if err != nil {
		return nil, err
	}

	for _, proposal := range resolved {
		t.publish(ctx, proposal)
	}
	return resolved, nil
}

// Veto lets a verified founder force an active proposal into the vetoed
// state. Privileged action, always logged.
func (t *Tally) Veto(ctx context.Context, proposalID string, founderID string) (*schema.Proposal, error) {
	isFounder, err := t.founders.IsFounder(ctx, founderID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify founder: %w", err)
	}
	if !isFounder {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFounder, founderID)
	}

	proposal, err := t.store.VetoProposal(ctx, proposalID, founderID, t.clock.Now())
	if err != nil {
		return nil, err
	}

	logger.WarnCtx(ctx, "proposal vetoed by founder",
		zap.String("proposal_id", proposalID),
		zap.String("founder_id", founderID))

	t.publish(ctx, proposal)
	return proposal, nil
}

func (t *Tally) publish(ctx context.Context, proposal *schema.Proposal) {
	if t.publisher == nil {
		return
	}
	err := t.publisher.Publish(ctx, &domain.PlatformEvent{
		EventID:    ulid.Make().String(),
		Type:       domain.EventProposalResolved,
		CreatorID:  proposal.CreatorID,
		SubjectID:  proposal.ProposalID,
		OccurredAt: t.clock.Now(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "failed to publish proposal event",
			zap.String("proposal_id", proposal.ProposalID), zap.Error(err))
	}
}
