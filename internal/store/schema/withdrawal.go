package schema

import (
	"time"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// Withdrawal represents the withdrawals table - requests against available
// balance. The requested amount is reserved (debited) on acceptance;
// rejection restores it, completion keeps it debited.
type Withdrawal struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WithdrawalID is the public withdrawal identifier (UUID)
	WithdrawalID string `gorm:"column:withdrawal_id;not null;uniqueIndex;type:varchar(36)"`
	// CreatorID is the requesting creator
	CreatorID string `gorm:"column:creator_id;not null;type:text;index"`
	// Amount is the requested amount in minor currency units
	Amount int64 `gorm:"column:amount;not null"`
	// Method is the payout rail (alipay, wechat_pay, bank_transfer)
	Method domain.WithdrawalMethod `gorm:"column:method;not null;type:text"`
	// Status follows requested→processing→completed|rejected
	Status domain.WithdrawalStatus `gorm:"column:status;not null;type:text;default:'requested'"`
	// RequestedAt is when the request was accepted and the amount reserved
	RequestedAt time.Time `gorm:"column:requested_at;not null;type:timestamptz"`
	// ResolvedAt is when the withdrawal reached a terminal state
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"`
	// CreatedAt is the row creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the last transition timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Withdrawal model
func (Withdrawal) TableName() string {
	return "withdrawals"
}
