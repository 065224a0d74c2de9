package payout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/logger"
	"github.com/origin-platform/rights-ledger/internal/messaging"
	"github.com/origin-platform/rights-ledger/internal/store"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

// Ledger manages creator balances and the withdrawal state machine. All
// balance mutations happen inside store transactions; this service holds the
// validation rules and event emission around them.
type Ledger struct {
	store             store.Store
	clock             adapter.Clock
	publisher         messaging.Publisher
	withdrawalMinimum int64
}

// NewLedger creates a payout ledger service
func NewLedger(s store.Store, clock adapter.Clock, publisher messaging.Publisher, withdrawalMinimum int64) *Ledger {
	return &Ledger{
		store:             s,
		clock:             clock,
		publisher:         publisher,
		withdrawalMinimum: withdrawalMinimum,
	}
}

// Balance returns a creator's pending and available totals. Creators with no
// ledger history get a zero balance, not an error.
func (l *Ledger) Balance(ctx context.Context, creatorID string) (*schema.CreatorBalance, error) {
	balance, err := l.store.GetCreatorBalance(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return &schema.CreatorBalance{CreatorID: creatorID}, nil
	}
	return balance, nil
}

// ListEntries retrieves a creator's ledger entries, newest first
func (l *Ledger) ListEntries(ctx context.Context, creatorID string, limit int) ([]*schema.LedgerEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return l.store.ListLedgerEntriesByCreator(ctx, creatorID, limit)
}

// RequestWithdrawal validates and reserves a withdrawal against the available
// balance. The amount is debited immediately; a later rejection restores it.
func (l *Ledger) RequestWithdrawal(ctx context.Context, creatorID string, amount int64, method domain.WithdrawalMethod) (*schema.Withdrawal, error) {
	if amount < l.withdrawalMinimum {
		return nil, fmt.Errorf("%w: %d < %d", domain.ErrBelowMinimum, amount, l.withdrawalMinimum)
	}
	if !domain.IsValidWithdrawalMethod(method) {
		return nil, fmt.Errorf("unsupported withdrawal method: %s", method)
	}

	now := l.clock.Now()
	withdrawal := &schema.Withdrawal{
		WithdrawalID: uuid.NewString(),
		CreatorID:    creatorID,
		Amount:       amount,
		Method:       method,
		Status:       domain.WithdrawalStatusRequested,
		RequestedAt:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := l.store.CreateWithdrawal(ctx, withdrawal); err != nil {
		return nil, err
	}

	l.publish(ctx, withdrawal)
	return withdrawal, nil
}

// GetWithdrawal retrieves a withdrawal by its public ID
func (l *Ledger) GetWithdrawal(ctx context.Context, withdrawalID string) (*schema.Withdrawal, error) {
	withdrawal, err := l.store.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, fmt.Errorf("%w: withdrawal %s", domain.ErrNotFound, withdrawalID)
	}
	return withdrawal, nil
}

// ListWithdrawals retrieves a creator's withdrawals, newest first
func (l *Ledger) ListWithdrawals(ctx context.Context, creatorID string, limit int) ([]*schema.Withdrawal, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return l.store.ListWithdrawalsByCreator(ctx, creatorID, limit)
}

// UpdateStatus transitions a withdrawal through its state machine. Terminal
// states never move again; rejection restores the reserved amount.
func (l *Ledger) UpdateStatus(ctx context.Context, withdrawalID string, next domain.WithdrawalStatus) (*schema.Withdrawal, error) {
	withdrawal, err := l.store.UpdateWithdrawalStatus(ctx, withdrawalID, next, l.clock.Now())
	if err != nil {
		return nil, err
	}

	l.publish(ctx, withdrawal)
	return withdrawal, nil
}

func (l *Ledger) publish(ctx context.Context, withdrawal *schema.Withdrawal) {
	if l.publisher == nil {
		return
	}
	err := l.publisher.Publish(ctx, &domain.PlatformEvent{
		EventID:    ulid.Make().String(),
		Type:       domain.EventWithdrawalUpdated,
		CreatorID:  withdrawal.CreatorID,
		SubjectID:  withdrawal.WithdrawalID,
		OccurredAt: withdrawal.UpdatedAt,
	})
	if err != nil {
		logger.WarnCtx(ctx, "failed to publish withdrawal event",
			zap.String("withdrawal_id", withdrawal.WithdrawalID), zap.Error(err))
	}
}
