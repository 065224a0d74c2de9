package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

// CreateProposal persists a governance proposal
func (s *pgStore) CreateProposal(ctx context.Context, proposal *schema.Proposal) error {
	if err := s.db.WithContext(ctx).Create(proposal).Error; err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return nil
}

// GetProposalByID retrieves a proposal by its public ID
func (s *pgStore) GetProposalByID(ctx context.Context, proposalID string) (*schema.Proposal, error) {
	var proposal schema.Proposal
	err := s.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return &proposal, nil
}

// ListProposalsByStatus retrieves proposals in a given status, newest first
func (s *pgStore) ListProposalsByStatus(ctx context.Context, status domain.ProposalStatus, limit int) ([]*schema.Proposal, error) {
	var proposals []*schema.Proposal
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("opened_at DESC").
		Limit(limit).
		Find(&proposals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// CastVote records or replaces a vote and adjusts the proposal tallies by the
// delta. The proposal row is locked so concurrent votes on the same proposal
// serialize and tallies stay consistent with the vote records.
func (s *pgStore) CastVote(ctx context.Context, input CastVoteInput) (*schema.Proposal, error) {
	var proposal schema.Proposal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("proposal_id = ?", input.ProposalID).
			First(&proposal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get proposal: %w", err)
		}

		if proposal.Status != domain.ProposalStatusActive || !input.CastAt.Before(proposal.ClosesAt) {
			return domain.ErrProposalClosed
		}

		// The cap is a fraction of the eligible-weight snapshot, in basis
		// points. Cross-multiplied to stay in integer arithmetic.
		if input.Weight*10000 > proposal.TotalEligibleWeight*input.WeightCapBps {
			return fmt.Errorf("%w: weight %d against eligible %d",
				domain.ErrWeightExceedsCap, input.Weight, proposal.TotalEligibleWeight)
		}

		var yesDelta, noDelta int64
		var existing schema.VoteRecord
		err = tx.Where("proposal_id = ? AND voter_id = ?", input.ProposalID, input.VoterID).
			First(&existing).Error
		switch {
		case err == nil:
			// Re-cast: back out the previous vote before applying the new one
			if existing.Choice == domain.VoteYes {
				yesDelta -= existing.Weight
			} else {
				noDelta -= existing.Weight
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First vote by this voter
		default:
			return fmt.Errorf("failed to get existing vote: %w", err)
		}

		if input.Choice == domain.VoteYes {
			yesDelta += input.Weight
		} else {
			noDelta += input.Weight
		}

		vote := schema.VoteRecord{
			ProposalID: input.ProposalID,
			VoterID:    input.VoterID,
			Choice:     input.Choice,
			Weight:     input.Weight,
			CastAt:     input.CastAt,
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "proposal_id"}, {Name: "voter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"choice", "weight", "cast_at"}),
		}).Create(&vote).Error
		if err != nil {
			return fmt.Errorf("failed to upsert vote: %w", err)
		}

		err = tx.Model(&schema.Proposal{}).
			Where("proposal_id = ?", input.ProposalID).
			Updates(map[string]interface{}{
				"yes_weight": gorm.Expr("yes_weight + ?", yesDelta),
				"no_weight":  gorm.Expr("no_weight + ?", noDelta),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update tallies: %w", err)
		}

		proposal.YesWeight += yesDelta
		proposal.NoWeight += noDelta
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &proposal, nil
}

// ListVotesByProposal retrieves the current votes on a proposal
func (s *pgStore) ListVotesByProposal(ctx context.Context, proposalID string) ([]*schema.VoteRecord, error) {
	var votes []*schema.VoteRecord
	err := s.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("cast_at ASC").
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

// ResolveDueProposals closes active proposals past their deadline. A proposal
// passes when turnout reaches the quorum fraction of the eligible-weight
// snapshot and yes strictly outweighs no; anything else is rejected.
func (s *pgStore) ResolveDueProposals(ctx context.Context, now time.Time, quorumFraction float64) ([]*schema.Proposal, error) {
	var resolved []*schema.Proposal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var due []*schema.Proposal
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ? AND closes_at <= ?", domain.ProposalStatusActive, now).
			Order("closes_at ASC").
			Find(&due).Error
		if err != nil {
			return fmt.Errorf("failed to select due proposals: %w", err)
		}

		for _, proposal := range due {
			turnout := proposal.YesWeight + proposal.NoWeight
			quorum := float64(turnout) >= quorumFraction*float64(proposal.TotalEligibleWeight)

			status := domain.ProposalStatusRejected
			if quorum && proposal.YesWeight > proposal.NoWeight {
				status = domain.ProposalStatusPassed
			}

			err := tx.Model(&schema.Proposal{}).
				Where("proposal_id = ?", proposal.ProposalID).
				Updates(map[string]interface{}{
					"status":      status,
					"resolved_at": now,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to resolve proposal: %w", err)
			}

			proposal.Status = status
			resolvedAt := now
			proposal.ResolvedAt = &resolvedAt
			resolved = append(resolved, proposal)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

// VetoProposal marks an active proposal vetoed by a founder
func (s *pgStore) VetoProposal(ctx context.Context, proposalID string, founderID string, at time.Time) (*schema.Proposal, error) {
	var proposal schema.Proposal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("proposal_id = ?", proposalID).
			First(&proposal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get proposal: %w", err)
		}

		if proposal.Status != domain.ProposalStatusActive {
			return domain.ErrProposalClosed
		}

		err = tx.Model(&schema.Proposal{}).
			Where("proposal_id = ?", proposalID).
			Updates(map[string]interface{}{
				"status":      domain.ProposalStatusVetoed,
				"vetoed_by":   founderID,
				"resolved_at": at,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to veto proposal: %w", err)
		}

		proposal.Status = domain.ProposalStatusVetoed
		proposal.VetoedBy = &founderID
		resolvedAt := at
		proposal.ResolvedAt = &resolvedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &proposal, nil
}
