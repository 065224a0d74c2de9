package schema

import (
	"time"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// SplitRule represents the split_rules table - versioned policy data for
// revenue splits. Rules are inserted, never updated in place: a policy change
// deactivates the old version and inserts a higher one, so every historical
// ledger entry stays reproducible under the version it recorded.
type SplitRule struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ChannelType is the monetization channel this rule governs
	ChannelType domain.ChannelType `gorm:"column:channel_type;not null;type:text;uniqueIndex:idx_split_rules_channel_version,priority:1"`
	// Version is the monotonically increasing rule version per channel
	Version int `gorm:"column:version;not null;uniqueIndex:idx_split_rules_channel_version,priority:2"`
	// FeeModel is percentage or flat_fee
	FeeModel domain.FeeModel `gorm:"column:fee_model;not null;type:text"`
	// CreatorBps is the creator share in basis points of gross (percentage model)
	CreatorBps int64 `gorm:"column:creator_bps;not null;default:0"`
	// PlatformBps is the platform share in basis points of gross (percentage model)
	PlatformBps int64 `gorm:"column:platform_bps;not null;default:0"`
	// ThirdPartyBps is the third-party share in basis points of gross (percentage model)
	ThirdPartyBps int64 `gorm:"column:third_party_bps;not null;default:0"`
	// FlatFee is the per-transaction fee in minor units (flat_fee model)
	FlatFee int64 `gorm:"column:flat_fee;not null;default:0"`
	// ThirdPartyCreatorID routes the third-party share to a distinguished
	// balance (e.g. the pooled fund); empty means the platform fee collector
	ThirdPartyCreatorID string `gorm:"column:third_party_creator_id;type:text"`
	// Active marks the rule version consulted for new events
	Active bool `gorm:"column:active;not null;default:true"`
	// CreatedAt is when this rule version was enacted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SplitRule model
func (SplitRule) TableName() string {
	return "split_rules"
}
