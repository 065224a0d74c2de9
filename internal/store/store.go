package store

import (
	"context"
	"time"

	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

// CastVoteInput carries everything needed to cast or re-cast a vote in a
// single transaction. WeightCapBps bounds a single voter's weight as a
// fraction of the proposal's eligible-weight snapshot.
type CastVoteInput struct {
	ProposalID   string
	VoterID      string
	Choice       domain.VoteChoice
	Weight       int64
	WeightCapBps int64
	CastAt       time.Time
}

// SettlementResult summarizes one settlement sweep batch
type SettlementResult struct {
	// EntriesSettled is the number of ledger entries moved from pending to available
	EntriesSettled int
	// AmountSettled is the total value moved, in minor currency units
	AmountSettled int64
}

// Store defines the interface for database operations
type Store interface {
	// CreateContentRecord persists a fingerprinted content record; if a record
	// with the same content ID already exists the existing row is returned
	CreateContentRecord(ctx context.Context, record *schema.ContentRecord) (*schema.ContentRecord, error)
	// GetContentRecordByContentID retrieves a content record by its content-addressed ID
	GetContentRecordByContentID(ctx context.Context, contentID string) (*schema.ContentRecord, error)

	// CreateCertificate persists a certificate; returns domain.ErrDuplicateCertificate
	// if one already exists for the content ID
	CreateCertificate(ctx context.Context, cert *schema.Certificate) error
	// GetCertificateByContentID retrieves a certificate by content ID
	GetCertificateByContentID(ctx context.Context, contentID string) (*schema.Certificate, error)
	// GetCertificateByCertificateID retrieves a certificate by its public ID
	GetCertificateByCertificateID(ctx context.Context, certificateID string) (*schema.Certificate, error)
	// RevokeCertificate marks a certificate revoked with the given reason
	RevokeCertificate(ctx context.Context, certificateID string, reason string, revokedAt time.Time) (*schema.Certificate, error)

	// GetActiveSplitRule retrieves the active split rule for a channel
	GetActiveSplitRule(ctx context.Context, channel domain.ChannelType) (*schema.SplitRule, error)
	// RecordLedgerEntry atomically persists a monetization event with its
	// derived ledger entry and credits the pending balances. Re-recording the
	// same event ID returns the previously derived entry unchanged.
	RecordLedgerEntry(ctx context.Context, event *schema.MonetizationEvent, entry *schema.LedgerEntry) (*schema.LedgerEntry, error)
	// GetLedgerEntryByEventID retrieves the ledger entry derived from an event
	GetLedgerEntryByEventID(ctx context.Context, eventID string) (*schema.LedgerEntry, error)
	// ListLedgerEntriesByCreator retrieves a creator's ledger entries, newest first
	ListLedgerEntriesByCreator(ctx context.Context, creatorID string, limit int) ([]*schema.LedgerEntry, error)
	// SettleDueEntries moves value of entries whose settlement time has passed
	// from pending to available, at most batchSize entries per call
	SettleDueEntries(ctx context.Context, now time.Time, batchSize int) (*SettlementResult, error)

	// GetCreatorBalance retrieves a creator's balance row
	GetCreatorBalance(ctx context.Context, creatorID string) (*schema.CreatorBalance, error)
	// CreateWithdrawal reserves the requested amount against the available
	// balance and persists the withdrawal in a single transaction
	CreateWithdrawal(ctx context.Context, withdrawal *schema.Withdrawal) error
	// GetWithdrawalByID retrieves a withdrawal by its public ID
	GetWithdrawalByID(ctx context.Context, withdrawalID string) (*schema.Withdrawal, error)
	// ListWithdrawalsByCreator retrieves a creator's withdrawals, newest first
	ListWithdrawalsByCreator(ctx context.Context, creatorID string, limit int) ([]*schema.Withdrawal, error)
	// UpdateWithdrawalStatus transitions a withdrawal, restoring the reserved
	// amount when the transition target is rejected
	UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, next domain.WithdrawalStatus, at time.Time) (*schema.Withdrawal, error)

	// CreateProposal persists a governance proposal
	CreateProposal(ctx context.Context, proposal *schema.Proposal) error
	// GetProposalByID retrieves a proposal by its public ID
	GetProposalByID(ctx context.Context, proposalID string) (*schema.Proposal, error)
	// ListProposalsByStatus retrieves proposals in a given status, newest first
	ListProposalsByStatus(ctx context.Context, status domain.ProposalStatus, limit int) ([]*schema.Proposal, error)
	// CastVote records or replaces a vote and adjusts the proposal tallies by the delta
	CastVote(ctx context.Context, input CastVoteInput) (*schema.Proposal, error)
	// ListVotesByProposal retrieves the current votes on a proposal
	ListVotesByProposal(ctx context.Context, proposalID string) ([]*schema.VoteRecord, error)
	// ResolveDueProposals closes active proposals past their deadline and
	// returns the proposals it resolved
	ResolveDueProposals(ctx context.Context, now time.Time, quorumFraction float64) ([]*schema.Proposal, error)
	// VetoProposal marks an active proposal vetoed by a founder
	VetoProposal(ctx context.Context, proposalID string, founderID string, at time.Time) (*schema.Proposal, error)
}
