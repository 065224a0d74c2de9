package schema

import (
	"time"
)

// LedgerEntry represents the ledger_entries table - the append-only,
// audit-grade split of a monetization event. Derived 1:1 from an event;
// creator + platform + third-party shares sum to the gross amount exactly.
type LedgerEntry struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EntryID is the public entry identifier (ULID)
	EntryID string `gorm:"column:entry_id;not null;uniqueIndex;type:varchar(26)"`
	// EventID references the monetization event this entry was derived from
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:varchar(36)"`
	// CreatorID is the creator credited with CreatorShare
	CreatorID string `gorm:"column:creator_id;not null;type:text;index"`
	// CreatorShare is the creator's portion in minor currency units
	CreatorShare int64 `gorm:"column:creator_share;not null"`
	// PlatformShare is the platform's portion, including any rounding remainder
	PlatformShare int64 `gorm:"column:platform_share;not null"`
	// ThirdPartyShare is the portion routed to the pooled fund or fee collector
	ThirdPartyShare int64 `gorm:"column:third_party_share;not null"`
	// ThirdPartyCreatorID is the balance credited with ThirdPartyShare; empty
	// means the share stays with the platform and is not tracked as a balance
	ThirdPartyCreatorID string `gorm:"column:third_party_creator_id;type:text"`
	// SplitRuleVersion records which rule version produced the split, keeping
	// historical entries reproducible after rule changes
	SplitRuleVersion int `gorm:"column:split_rule_version;not null"`
	// SettlesAt is the frozen settlement due time (recorded-at + settlement
	// delay at ingestion). Later changes to the global delay never move it.
	SettlesAt time.Time `gorm:"column:settles_at;not null;type:timestamptz;index:idx_ledger_entries_due,priority:2"`
	// Settled marks that the settlement sweep already moved this entry's value
	// from pending to available
	Settled bool `gorm:"column:settled;not null;default:false;index:idx_ledger_entries_due,priority:1"`
	// CreatedAt is the ingestion timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
