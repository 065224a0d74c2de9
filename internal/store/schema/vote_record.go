package schema

import (
	"time"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// VoteRecord represents the vote_records table - one row per (proposal, voter).
// Re-voting replaces the row and adjusts the proposal tallies by the delta.
// Weight is captured at vote time and never recomputed.
type VoteRecord struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProposalID references the proposal voted on
	ProposalID string `gorm:"column:proposal_id;not null;type:varchar(26);uniqueIndex:idx_vote_records_proposal_voter,priority:1"`
	// VoterID is the voting identity
	VoterID string `gorm:"column:voter_id;not null;type:text;uniqueIndex:idx_vote_records_proposal_voter,priority:2"`
	// Choice is yes or no
	Choice domain.VoteChoice `gorm:"column:choice;not null;type:text"`
	// Weight is the voting power captured when the vote was cast
	Weight int64 `gorm:"column:weight;not null"`
	// CastAt is when the (latest) vote was cast
	CastAt time.Time `gorm:"column:cast_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the VoteRecord model
func (VoteRecord) TableName() string {
	return "vote_records"
}
