package schema

import (
	"time"
)

// CreatorBalance represents the creator_balances table - the running pending
// and available totals per creator, in minor currency units. Mutated only by
// ledger ingestion (pending up), settlement sweeps (pending→available), and
// withdrawal transitions (available down, restored on rejection). The pooled
// fund is tracked as its own row under the distinguished pool creator ID.
type CreatorBalance struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CreatorID is the balance owner
	CreatorID string `gorm:"column:creator_id;not null;uniqueIndex;type:text"`
	// PendingTotal is the sum of unsettled ledger shares
	PendingTotal int64 `gorm:"column:pending_total;not null;default:0"`
	// AvailableTotal is the withdrawable sum (settled shares minus reserved and completed withdrawals)
	AvailableTotal int64 `gorm:"column:available_total;not null;default:0"`
	// CreatedAt is the timestamp when this balance row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last mutated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CreatorBalance model
func (CreatorBalance) TableName() string {
	return "creator_balances"
}
