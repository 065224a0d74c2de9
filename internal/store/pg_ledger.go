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

// creditPending adds amount to a creator's pending total, creating the
// balance row on first credit. The increment runs in SQL so concurrent
// credits never lose updates.
func creditPending(tx *gorm.DB, creatorID string, amount int64, at time.Time) error {
	if amount == 0 {
		return nil
	}

	balance := schema.CreatorBalance{CreatorID: creatorID, CreatedAt: at, UpdatedAt: at}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "creator_id"}},
		DoNothing: true,
	}).Create(&balance).Error; err != nil {
		return fmt.Errorf("failed to ensure balance row: %w", err)
	}

	err := tx.Model(&schema.CreatorBalance{}).
		Where("creator_id = ?", creatorID).
		Updates(map[string]interface{}{
			"pending_total": gorm.Expr("pending_total + ?", amount),
			"updated_at":    at,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to credit pending balance: %w", err)
	}

	return nil
}

// GetActiveSplitRule retrieves the active split rule for a channel
func (s *pgStore) GetActiveSplitRule(ctx context.Context, channel domain.ChannelType) (*schema.SplitRule, error) {
	var rule schema.SplitRule
	err := s.db.WithContext(ctx).
		Where("channel_type = ? AND active = ?", channel, true).
		Order("version DESC").
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get split rule: %w", err)
	}
	return &rule, nil
}

// RecordLedgerEntry atomically persists a monetization event with its derived
// ledger entry and credits the pending balances. Event IDs are unique, so
// re-recording the same event returns the previously derived entry unchanged.
func (s *pgStore) RecordLedgerEntry(ctx context.Context, event *schema.MonetizationEvent, entry *schema.LedgerEntry) (*schema.LedgerEntry, error) {
	var recorded *schema.LedgerEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).Create(event)
		if result.Error != nil {
			return fmt.Errorf("failed to create monetization event: %w", result.Error)
		}

		// Zero rows means the event was already ingested, hand back the
		// entry derived the first time
		if result.RowsAffected == 0 {
			var existing schema.LedgerEntry
			if err := tx.Where("event_id = ?", event.EventID).First(&existing).Error; err != nil {
				return fmt.Errorf("failed to get existing ledger entry: %w", err)
			}
			recorded = &existing
			return nil
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create ledger entry: %w", err)
		}

		if err := creditPending(tx, entry.CreatorID, entry.CreatorShare, entry.CreatedAt); err != nil {
			return err
		}
		if entry.ThirdPartyCreatorID != "" {
			if err := creditPending(tx, entry.ThirdPartyCreatorID, entry.ThirdPartyShare, entry.CreatedAt); err != nil {
				return err
			}
		}

		recorded = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	return recorded, nil
}

// GetLedgerEntryByEventID retrieves the ledger entry derived from an event
func (s *pgStore) GetLedgerEntryByEventID(ctx context.Context, eventID string) (*schema.LedgerEntry, error) {
	var entry schema.LedgerEntry
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return &entry, nil
}

// ListLedgerEntriesByCreator retrieves a creator's ledger entries, newest first
func (s *pgStore) ListLedgerEntriesByCreator(ctx context.Context, creatorID string, limit int) ([]*schema.LedgerEntry, error) {
	var entries []*schema.LedgerEntry
	err := s.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

// SettleDueEntries moves value of entries whose settlement time is strictly
// in the past from pending to available, at most batchSize entries per call.
// An entry due at exactly now waits for the next sweep.
func (s *pgStore) SettleDueEntries(ctx context.Context, now time.Time, batchSize int) (*SettlementResult, error) {
	result := &SettlementResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var due []*schema.LedgerEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("settled = ? AND settles_at < ?", false, now).
			Order("settles_at ASC").
			Limit(batchSize).
			Find(&due).Error
		if err != nil {
			return fmt.Errorf("failed to select due entries: %w", err)
		}
		if len(due) == 0 {
			return nil
		}

		// Aggregate per balance so each row is touched once per batch
		settledAmounts := make(map[string]int64)
		entryIDs := make([]uint64, 0, len(due))
		for _, entry := range due {
			settledAmounts[entry.CreatorID] += entry.CreatorShare
			result.AmountSettled += entry.CreatorShare
			if entry.ThirdPartyCreatorID != "" {
				settledAmounts[entry.ThirdPartyCreatorID] += entry.ThirdPartyShare
				result.AmountSettled += entry.ThirdPartyShare
			}
			entryIDs = append(entryIDs, entry.ID)
		}

		for creatorID, amount := range settledAmounts {
			if amount == 0 {
				continue
			}
			err := tx.Model(&schema.CreatorBalance{}).
				Where("creator_id = ?", creatorID).
				Updates(map[string]interface{}{
					"pending_total":   gorm.Expr("pending_total - ?", amount),
					"available_total": gorm.Expr("available_total + ?", amount),
					"updated_at":      now,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to settle balance: %w", err)
			}
		}

		err = tx.Model(&schema.LedgerEntry{}).
			Where("id IN ?", entryIDs).
			Update("settled", true).Error
		if err != nil {
			return fmt.Errorf("failed to mark entries settled: %w", err)
		}

		result.EntriesSettled = len(due)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetCreatorBalance retrieves a creator's balance row
func (s *pgStore) GetCreatorBalance(ctx context.Context, creatorID string) (*schema.CreatorBalance, error) {
	var balance schema.CreatorBalance
	err := s.db.WithContext(ctx).Where("creator_id = ?", creatorID).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get creator balance: %w", err)
	}
	return &balance, nil
}

// CreateWithdrawal reserves the requested amount against the available
// balance and persists the withdrawal in a single transaction. The balance
// row is locked so concurrent requests serialize and cannot both pass the
// sufficiency check.
func (s *pgStore) CreateWithdrawal(ctx context.Context, withdrawal *schema.Withdrawal) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balance schema.CreatorBalance
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("creator_id = ?", withdrawal.CreatorID).
			First(&balance).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrInsufficientBalance
			}
			return fmt.Errorf("failed to get creator balance: %w", err)
		}

		if balance.AvailableTotal < withdrawal.Amount {
			return domain.ErrInsufficientBalance
		}

		err = tx.Model(&schema.CreatorBalance{}).
			Where("creator_id = ?", withdrawal.CreatorID).
			Updates(map[string]interface{}{
				"available_total": gorm.Expr("available_total - ?", withdrawal.Amount),
				"updated_at":      withdrawal.RequestedAt,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to reserve withdrawal amount: %w", err)
		}

		if err := tx.Create(withdrawal).Error; err != nil {
			return fmt.Errorf("failed to create withdrawal: %w", err)
		}

		return nil
	})
}

// GetWithdrawalByID retrieves a withdrawal by its public ID
func (s *pgStore) GetWithdrawalByID(ctx context.Context, withdrawalID string) (*schema.Withdrawal, error) {
	var withdrawal schema.Withdrawal
	err := s.db.WithContext(ctx).Where("withdrawal_id = ?", withdrawalID).First(&withdrawal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}
	return &withdrawal, nil
}

// ListWithdrawalsByCreator retrieves a creator's withdrawals, newest first
func (s *pgStore) ListWithdrawalsByCreator(ctx context.Context, creatorID string, limit int) ([]*schema.Withdrawal, error) {
	var withdrawals []*schema.Withdrawal
	err := s.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("requested_at DESC").
		Limit(limit).
		Find(&withdrawals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return withdrawals, nil
}

// UpdateWithdrawalStatus transitions a withdrawal, restoring the reserved
// amount when the transition target is rejected
func (s *pgStore) UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, next domain.WithdrawalStatus, at time.Time) (*schema.Withdrawal, error) {
	var withdrawal schema.Withdrawal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("withdrawal_id = ?", withdrawalID).
			First(&withdrawal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get withdrawal: %w", err)
		}

		if !withdrawal.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, withdrawal.Status, next)
		}

		updates := map[string]interface{}{
			"status":     next,
			"updated_at": at,
		}
		if next.Terminal() {
			updates["resolved_at"] = at
		}

		err = tx.Model(&schema.Withdrawal{}).
			Where("withdrawal_id = ?", withdrawalID).
			Updates(updates).Error
		if err != nil {
			return fmt.Errorf("failed to update withdrawal: %w", err)
		}

		// Rejection hands the reserved amount back
		if next == domain.WithdrawalStatusRejected {
			err = tx.Model(&schema.CreatorBalance{}).
				Where("creator_id = ?", withdrawal.CreatorID).
				Updates(map[string]interface{}{
					"available_total": gorm.Expr("available_total + ?", withdrawal.Amount),
					"updated_at":      at,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to restore balance: %w", err)
			}
		}

		withdrawal.Status = next
		withdrawal.UpdatedAt = at
		if next.Terminal() {
			withdrawal.ResolvedAt = &at
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &withdrawal, nil
}
