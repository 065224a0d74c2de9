package schema

import (
	"time"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// Proposal represents the proposals table - governance proposals over the
// mutable-rule allow-list. Tallies are running sums maintained by vote casting.
type Proposal struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProposalID is the public proposal identifier (ULID)
	ProposalID string `gorm:"column:proposal_id;not null;uniqueIndex;type:varchar(26)"`
	// CreatorID is the proposal author
	CreatorID string `gorm:"column:creator_id;not null;type:text;index"`
	// Category must be on the mutable-rule allow-list at creation time
	Category domain.ProposalCategory `gorm:"column:category;not null;type:text"`
	// Title is the proposal headline
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the proposal body
	Description string `gorm:"column:description;type:text"`
	// OpenedAt is when voting opened
	OpenedAt time.Time `gorm:"column:opened_at;not null;type:timestamptz"`
	// ClosesAt is the voting deadline
	ClosesAt time.Time `gorm:"column:closes_at;not null;type:timestamptz;index"`
	// YesWeight is the running sum of yes-vote weights
	YesWeight int64 `gorm:"column:yes_weight;not null;default:0"`
	// NoWeight is the running sum of no-vote weights
	NoWeight int64 `gorm:"column:no_weight;not null;default:0"`
	// TotalEligibleWeight is the snapshot of total voting power at opening,
	// used for quorum and the per-voter cap
	TotalEligibleWeight int64 `gorm:"column:total_eligible_weight;not null"`
	// Status is active, passed, rejected, or vetoed
	Status domain.ProposalStatus `gorm:"column:status;not null;type:text;default:'active'"`
	// VetoedBy records the founder identity behind a veto, if any
	VetoedBy *string `gorm:"column:vetoed_by;type:text"`
	// ResolvedAt is when the proposal left the active state
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"`
	// CreatedAt is the row creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Proposal model
func (Proposal) TableName() string {
	return "proposals"
}
