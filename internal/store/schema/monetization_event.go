package schema

import (
	"time"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// MonetizationEvent represents the monetization_events table - immutable
// records of gross revenue entering the platform through a channel.
type MonetizationEvent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is the public event identifier (UUID), used for idempotent ingestion
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:varchar(36)"`
	// ContentID references the monetized content; nil for content-less fees
	// such as subscriptions and membership fees
	ContentID *string `gorm:"column:content_id;type:text;index"`
	// CreatorID is the earning creator
	CreatorID string `gorm:"column:creator_id;not null;type:text;index"`
	// ChannelType identifies the monetization channel the event came through
	ChannelType domain.ChannelType `gorm:"column:channel_type;not null;type:text"`
	// GrossAmount is the gross revenue in integer minor currency units
	GrossAmount int64 `gorm:"column:gross_amount;not null"`
	// OccurredAt is when the monetization happened upstream
	OccurredAt time.Time `gorm:"column:occurred_at;not null;type:timestamptz"`
	// CreatedAt is when the event was recorded here
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MonetizationEvent model
func (MonetizationEvent) TableName() string {
	return "monetization_events"
}
