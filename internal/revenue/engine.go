package revenue

import (
	"context"
	"fmt"
	"time"

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

// Engine turns monetization events into auditable ledger entries. Split
// policy lives in the versioned rule table, never in code: the engine only
// looks up the active rule and applies integer arithmetic.
type Engine struct {
	store           store.Store
	clock           adapter.Clock
	publisher       messaging.Publisher
	settlementDelay time.Duration
}

// NewEngine creates a revenue split engine
func NewEngine(s store.Store, clock adapter.Clock, publisher messaging.Publisher, settlementDelay time.Duration) *Engine {
	return &Engine{
		store:           s,
		clock:           clock,
		publisher:       publisher,
		settlementDelay: settlementDelay,
	}
}

// RecordEventInput describes one incoming monetization event
type RecordEventInput struct {
	// EventID is the upstream event identifier; generated when empty
	EventID string
	// ContentID is the monetized content, empty for content-less fees
	ContentID string
	// CreatorID is the earning creator
	CreatorID string
	// ChannelType is the monetization channel
	ChannelType domain.ChannelType
	// GrossAmount is the gross revenue in minor currency units
	GrossAmount int64
	// OccurredAt is when the monetization happened upstream; zero means now
	OccurredAt time.Time
}

// RecordEvent validates the event, computes the split under the active rule
// version, and persists event, entry, and balance credit atomically. The
// settlement due time is frozen on the entry at recording time.
func (e *Engine) RecordEvent(ctx context.Context, input RecordEventInput) (*schema.LedgerEntry, error) {
	if input.GrossAmount < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrNegativeAmount, input.GrossAmount)
	}

	rule, err := e.store.GetActiveSplitRule(ctx, input.ChannelType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up split rule: %w", err)
	}
	if rule == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownChannelType, input.ChannelType)
	}

	split := ComputeSplit(rule, input.GrossAmount)

	now := e.clock.Now()
	eventID := input.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}
	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}

	event := &schema.MonetizationEvent{
		EventID:     eventID,
		CreatorID:   input.CreatorID,
		ChannelType: input.ChannelType,
		GrossAmount: input.GrossAmount,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
	}
	if input.ContentID != "" {
		contentID := input.ContentID
		event.ContentID = &contentID
	}

	entry := &schema.LedgerEntry{
		EntryID:             ulid.Make().String(),
		EventID:             eventID,
		CreatorID:           input.CreatorID,
		CreatorShare:        split.CreatorShare,
		PlatformShare:       split.PlatformShare,
		ThirdPartyShare:     split.ThirdPartyShare,
		ThirdPartyCreatorID: rule.ThirdPartyCreatorID,
		SplitRuleVersion:    rule.Version,
		SettlesAt:           now.Add(e.settlementDelay),
		CreatedAt:           now,
	}

	recorded, err := e.store.RecordLedgerEntry(ctx, event, entry)
	if err != nil {
		return nil, err
	}

	// Idempotent replay: the entry already existed, no event to emit
	if recorded.EntryID != entry.EntryID {
		return recorded, nil
	}

	e.publish(ctx, recorded)
	return recorded, nil
}

func (e *Engine) publish(ctx context.Context, entry *schema.LedgerEntry) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.Publish(ctx, &domain.PlatformEvent{
		EventID:    ulid.Make().String(),
		Type:       domain.EventLedgerEntryCreated,
		CreatorID:  entry.CreatorID,
		SubjectID:  entry.EntryID,
		OccurredAt: entry.CreatedAt,
	})
	if err != nil {
		logger.WarnCtx(ctx, "failed to publish ledger entry event",
			zap.String("entry_id", entry.EntryID), zap.Error(err))
	}
}

// ComputeSplit divides a gross amount under a rule. Shares are floored and
// the remainder goes to the platform, so the three shares always sum to the
// gross amount and no share goes negative.
func ComputeSplit(rule *schema.SplitRule, gross int64) domain.Split {
	if rule.FeeModel == domain.FeeModelFlatFee {
		fee := rule.FlatFee
		if fee > gross {
			fee = gross
		}
		return domain.Split{
			CreatorShare:    gross - fee,
			PlatformShare:   0,
			ThirdPartyShare: fee,
		}
	}

	creator := gross * rule.CreatorBps / 10000
	thirdParty := gross * rule.ThirdPartyBps / 10000
	return domain.Split{
		CreatorShare:    creator,
		PlatformShare:   gross - creator - thirdParty,
		ThirdPartyShare: thirdParty,
	}
}
