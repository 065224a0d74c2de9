package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

// RunStoreTests runs all store tests against the provided store factory
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ContentRecords", testContentRecords},
		{"CertificateLifecycle", testCertificateLifecycle},
		{"SeededSplitRules", testSeededSplitRules},
		{"RecordLedgerEntry", testRecordLedgerEntry},
		{"SettleDueEntries", testSettleDueEntries},
		{"WithdrawalLifecycle", testWithdrawalLifecycle},
		{"CastVote", testCastVote},
		{"ResolveDueProposals", testResolveDueProposals},
		{"VetoProposal", testVetoProposal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := initDB(t)
			tt.fn(t, s)
		})
	}
}

func newContentRecord(creatorID string) *schema.ContentRecord {
	digest := ulid.Make().String()
	return &schema.ContentRecord{
		ContentID:   "oc1:" + digest,
		CreatorID:   creatorID,
		ContentHash: digest,
		MimeType:    "text/plain; charset=utf-8",
		SizeBytes:   42,
		Title:       "landscape sketch",
		CreatedAt:   time.Now().UTC(),
	}
}

func newCertificate(contentID, creatorID string) *schema.Certificate {
	now := time.Now().UTC()
	return &schema.Certificate{
		CertificateID: ulid.Make().String(),
		ContentID:     contentID,
		CreatorID:     creatorID,
		ContentHash:   "deadbeef",
		IssuedAt:      now,
		ChainName:     "eip155:1",
		AnchorTxHash:  "0xabc",
		Attestation:   datatypes.JSON([]byte(`{"authority":"test"}`)),
		Status:        domain.CertificateStatusValid,
		ExpiresAt:     now.Add(24 * time.Hour),
		CreatedAt:     now,
	}
}

// recordEntry persists an event and its derived entry with the given shares
func recordEntry(t *testing.T, s Store, creatorID string, creatorShare, platformShare, thirdPartyShare int64, thirdPartyID string, settlesAt time.Time) *schema.LedgerEntry {
	t.Helper()
	now := time.Now().UTC()
	eventID := uuid.NewString()
	event := &schema.MonetizationEvent{
		EventID:     eventID,
		CreatorID:   creatorID,
		ChannelType: domain.ChannelLicensing,
		GrossAmount: creatorShare + platformShare + thirdPartyShare,
		OccurredAt:  now,
		CreatedAt:   now,
	}
	entry := &schema.LedgerEntry{
		EntryID:             ulid.Make().String(),
		EventID:             eventID,
		CreatorID:           creatorID,
		CreatorShare:        creatorShare,
		PlatformShare:       platformShare,
		ThirdPartyShare:     thirdPartyShare,
		ThirdPartyCreatorID: thirdPartyID,
		SplitRuleVersion:    1,
		SettlesAt:           settlesAt,
		CreatedAt:           now,
	}

	recorded, err := s.RecordLedgerEntry(context.Background(), event, entry)
	require.NoError(t, err)
	require.Equal(t, entry.EntryID, recorded.EntryID)
	return recorded
}

func testContentRecords(t *testing.T, s Store) {
	ctx := context.Background()

	record := newContentRecord("creator-1")
	created, err := s.CreateContentRecord(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, record.ContentID, created.ContentID)

	// Re-registering the same content hands back the original record
	duplicate := newContentRecord("creator-2")
	duplicate.ContentID = record.ContentID
	again, err := s.CreateContentRecord(ctx, duplicate)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "creator-1", again.CreatorID)

	got, err := s.GetContentRecordByContentID(ctx, record.ContentID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.ContentHash, got.ContentHash)

	missing, err := s.GetContentRecordByContentID(ctx, "oc1:missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testCertificateLifecycle(t *testing.T, s Store) {
	ctx := context.Background()

	record := newContentRecord("creator-1")
	_, err := s.CreateContentRecord(ctx, record)
	require.NoError(t, err)

	cert := newCertificate(record.ContentID, "creator-1")
	require.NoError(t, s.CreateCertificate(ctx, cert))

	// One certificate per content, ever
	second := newCertificate(record.ContentID, "creator-1")
	err = s.CreateCertificate(ctx, second)
	require.ErrorIs(t, err, domain.ErrDuplicateCertificate)

	byContent, err := s.GetCertificateByContentID(ctx, record.ContentID)
	require.NoError(t, err)
	require.NotNil(t, byContent)
	assert.Equal(t, cert.CertificateID, byContent.CertificateID)

	byID, err := s.GetCertificateByCertificateID(ctx, cert.CertificateID)
	require.NoError(t, err)
	require.NotNil(t, byID)

	revokedAt := time.Now().UTC()
	revoked, err := s.RevokeCertificate(ctx, cert.CertificateID, "ownership dispute", revokedAt)
	require.NoError(t, err)
	assert.Equal(t, domain.CertificateStatusRevoked, revoked.Status)
	require.NotNil(t, revoked.RevokedReason)
	assert.Equal(t, "ownership dispute", *revoked.RevokedReason)

	// Revocation is terminal
	_, err = s.RevokeCertificate(ctx, cert.CertificateID, "again", revokedAt)
	require.ErrorIs(t, err, domain.ErrAlreadyRevoked)

	_, err = s.RevokeCertificate(ctx, "missing", "reason", revokedAt)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func testSeededSplitRules(t *testing.T, s Store) {
	ctx := context.Background()

	licensing, err := s.GetActiveSplitRule(ctx, domain.ChannelLicensing)
	require.NoError(t, err)
	require.NotNil(t, licensing)
	assert.Equal(t, domain.FeeModelPercentage, licensing.FeeModel)
	assert.Equal(t, int64(9500), licensing.CreatorBps)
	assert.Equal(t, int64(500), licensing.PlatformBps)

	membership, err := s.GetActiveSplitRule(ctx, domain.ChannelPlatformMembershipFee)
	require.NoError(t, err)
	require.NotNil(t, membership)
	assert.Equal(t, domain.PoolFundCreatorID, membership.ThirdPartyCreatorID)

	// Flat fees route to the fee-collector balance
	community, err := s.GetActiveSplitRule(ctx, domain.ChannelPaidCommunity)
	require.NoError(t, err)
	require.NotNil(t, community)
	assert.Equal(t, domain.FeeModelFlatFee, community.FeeModel)
	assert.Equal(t, domain.FeeCollectorCreatorID, community.ThirdPartyCreatorID)

	subscription, err := s.GetActiveSplitRule(ctx, domain.ChannelSubscription)
	require.NoError(t, err)
	require.NotNil(t, subscription)
	assert.Equal(t, domain.FeeCollectorCreatorID, subscription.ThirdPartyCreatorID)

	unknown, err := s.GetActiveSplitRule(ctx, domain.ChannelType("merch"))
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func testRecordLedgerEntry(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	entry := recordEntry(t, s, "creator-1", 950, 50, 0, "", now.Add(time.Hour))

	balance, err := s.GetCreatorBalance(ctx, "creator-1")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, int64(950), balance.PendingTotal)
	assert.Equal(t, int64(0), balance.AvailableTotal)

	// Replaying the same event ID returns the original entry and moves nothing
	replayEvent := &schema.MonetizationEvent{
		EventID:     entry.EventID,
		CreatorID:   "creator-1",
		ChannelType: domain.ChannelLicensing,
		GrossAmount: 1000,
		OccurredAt:  now,
		CreatedAt:   now,
	}
	replayEntry := &schema.LedgerEntry{
		EntryID:          ulid.Make().String(),
		EventID:          entry.EventID,
		CreatorID:        "creator-1",
		CreatorShare:     950,
		PlatformShare:    50,
		SplitRuleVersion: 1,
		SettlesAt:        now.Add(time.Hour),
		CreatedAt:        now,
	}
	recorded, err := s.RecordLedgerEntry(ctx, replayEvent, replayEntry)
	require.NoError(t, err)
	assert.Equal(t, entry.EntryID, recorded.EntryID)

	balance, err = s.GetCreatorBalance(ctx, "creator-1")
	require.NoError(t, err)
	assert.Equal(t, int64(950), balance.PendingTotal)

	// Third-party shares credit the routed balance, here the pooled fund
	recordEntry(t, s, "creator-2", 0, 897, 2093, domain.PoolFundCreatorID, now.Add(time.Hour))
	pool, err := s.GetCreatorBalance(ctx, domain.PoolFundCreatorID)
	require.NoError(t, err)
	require.NotNil(t, pool)
	assert.Equal(t, int64(2093), pool.PendingTotal)

	got, err := s.GetLedgerEntryByEventID(ctx, entry.EventID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.EntryID, got.EntryID)

	entries, err := s.ListLedgerEntriesByCreator(ctx, "creator-1", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func testSettleDueEntries(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	recordEntry(t, s, "creator-1", 950, 50, 0, "", now.Add(-time.Hour))
	recordEntry(t, s, "creator-1", 475, 25, 0, "", now.Add(-time.Minute))
	recordEntry(t, s, "creator-1", 7, 0, 0, "", now)                  // due at exactly now: waits a cycle
	recordEntry(t, s, "creator-1", 100, 0, 0, "", now.Add(time.Hour)) // not yet due

	result, err := s.SettleDueEntries(ctx, now, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, result.EntriesSettled)
	assert.Equal(t, int64(1425), result.AmountSettled)

	balance, err := s.GetCreatorBalance(ctx, "creator-1")
	require.NoError(t, err)
	assert.Equal(t, int64(107), balance.PendingTotal)
	assert.Equal(t, int64(1425), balance.AvailableTotal)

	// Settled entries are never picked up again
	again, err := s.SettleDueEntries(ctx, now, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, again.EntriesSettled)

	// Batch size bounds one sweep
	recordEntry(t, s, "creator-2", 10, 0, 0, "", now.Add(-time.Hour))
	recordEntry(t, s, "creator-2", 20, 0, 0, "", now.Add(-time.Hour))
	limited, err := s.SettleDueEntries(ctx, now, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, limited.EntriesSettled)
}

func testWithdrawalLifecycle(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	// No balance row yet
	err := s.CreateWithdrawal(ctx, &schema.Withdrawal{
		WithdrawalID: uuid.NewString(),
		CreatorID:    "creator-1",
		Amount:       100,
		Method:       domain.WithdrawalMethodAlipay,
		Status:       domain.WithdrawalStatusRequested,
		RequestedAt:  now,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// Fund the available balance through settlement
	recordEntry(t, s, "creator-1", 1000, 0, 0, "", now.Add(-time.Hour))
	_, err = s.SettleDueEntries(ctx, now, 100)
	require.NoError(t, err)

	withdrawal := &schema.Withdrawal{
		WithdrawalID: uuid.NewString(),
		CreatorID:    "creator-1",
		Amount:       600,
		Method:       domain.WithdrawalMethodAlipay,
		Status:       domain.WithdrawalStatusRequested,
		RequestedAt:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateWithdrawal(ctx, withdrawal))

	// The amount is reserved immediately
	balance, err := s.GetCreatorBalance(ctx, "creator-1")
	require.NoError(t, err)
	assert.Equal(t, int64(400), balance.AvailableTotal)

	// Requests beyond the remaining balance are rejected
	err = s.CreateWithdrawal(ctx, &schema.Withdrawal{
		WithdrawalID: uuid.NewString(),
		CreatorID:    "creator-1",
		Amount:       500,
		Method:       domain.WithdrawalMethodAlipay,
		Status:       domain.WithdrawalStatusRequested,
		RequestedAt:  now,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// requested -> completed skips processing, not allowed
	_, err = s.UpdateWithdrawalStatus(ctx, withdrawal.WithdrawalID, domain.WithdrawalStatusCompleted, now)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	updated, err := s.UpdateWithdrawalStatus(ctx, withdrawal.WithdrawalID, domain.WithdrawalStatusProcessing, now)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusProcessing, updated.Status)

	// Rejection restores the reserved amount
	rejected, err := s.UpdateWithdrawalStatus(ctx, withdrawal.WithdrawalID, domain.WithdrawalStatusRejected, now)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusRejected, rejected.Status)
	require.NotNil(t, rejected.ResolvedAt)

	balance, err = s.GetCreatorBalance(ctx, "creator-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance.AvailableTotal)

	// Terminal states never move again
	_, err = s.UpdateWithdrawalStatus(ctx, withdrawal.WithdrawalID, domain.WithdrawalStatusProcessing, now)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	list, err := s.ListWithdrawalsByCreator(ctx, "creator-1", 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func newProposal(closesAt time.Time, eligible int64) *schema.Proposal {
	now := time.Now().UTC()
	return &schema.Proposal{
		ProposalID:          ulid.Make().String(),
		CreatorID:           "creator-1",
		Category:            domain.CategoryIncentiveRules,
		Title:               "Adjust creation incentive curve",
		OpenedAt:            now,
		ClosesAt:            closesAt,
		TotalEligibleWeight: eligible,
		Status:              domain.ProposalStatusActive,
		CreatedAt:           now,
	}
}

func testCastVote(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	proposal := newProposal(now.Add(time.Hour), 100_000)
	require.NoError(t, s.CreateProposal(ctx, proposal))

	// Cap is 5% of the eligible snapshot
	cast := func(voterID string, choice domain.VoteChoice, weight int64) (*schema.Proposal, error) {
		return s.CastVote(ctx, CastVoteInput{
			ProposalID:   proposal.ProposalID,
			VoterID:      voterID,
			Choice:       choice,
			Weight:       weight,
			WeightCapBps: 500,
			CastAt:       now,
		})
	}

	tallied, err := cast("voter-1", domain.VoteYes, 3000)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), tallied.YesWeight)

	tallied, err = cast("voter-2", domain.VoteNo, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), tallied.NoWeight)

	// Re-casting replaces the earlier vote; tallies move by the delta
	tallied, err = cast("voter-1", domain.VoteNo, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), tallied.YesWeight)
	assert.Equal(t, int64(3000), tallied.NoWeight)

	votes, err := s.ListVotesByProposal(ctx, proposal.ProposalID)
	require.NoError(t, err)
	assert.Len(t, votes, 2)

	// Weight above 5% of the snapshot is rejected
	_, err = cast("whale", domain.VoteYes, 5001)
	require.ErrorIs(t, err, domain.ErrWeightExceedsCap)

	// Votes after the deadline are rejected
	closed := newProposal(now.Add(-time.Minute), 100_000)
	require.NoError(t, s.CreateProposal(ctx, closed))
	_, err = s.CastVote(ctx, CastVoteInput{
		ProposalID:   closed.ProposalID,
		VoterID:      "voter-1",
		Choice:       domain.VoteYes,
		Weight:       100,
		WeightCapBps: 500,
		CastAt:       now,
	})
	require.ErrorIs(t, err, domain.ErrProposalClosed)

	_, err = s.CastVote(ctx, CastVoteInput{
		ProposalID:   "missing",
		VoterID:      "voter-1",
		Choice:       domain.VoteYes,
		Weight:       100,
		WeightCapBps: 500,
		CastAt:       now,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func testResolveDueProposals(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	// Quorum met, yes ahead: passes
	passing := newProposal(now.Add(-time.Minute), 10_000)
	require.NoError(t, s.CreateProposal(ctx, passing))
	// Quorum met, no ahead: rejected
	losing := newProposal(now.Add(-time.Minute), 10_000)
	require.NoError(t, s.CreateProposal(ctx, losing))
	// Turnout below quorum: rejected regardless of direction
	quiet := newProposal(now.Add(-time.Minute), 10_000)
	require.NoError(t, s.CreateProposal(ctx, quiet))
	// Still open: untouched
	open := newProposal(now.Add(time.Hour), 10_000)
	require.NoError(t, s.CreateProposal(ctx, open))

	vote := func(proposalID, voterID string, choice domain.VoteChoice, weight int64) {
		_, err := s.CastVote(ctx, CastVoteInput{
			ProposalID:   proposalID,
			VoterID:      voterID,
			Choice:       choice,
			Weight:       weight,
			WeightCapBps: 10_000,
			CastAt:       now.Add(-time.Hour),
		})
		require.NoError(t, err)
	}
	vote(passing.ProposalID, "voter-1", domain.VoteYes, 800)
	vote(passing.ProposalID, "voter-2", domain.VoteNo, 400)
	vote(losing.ProposalID, "voter-1", domain.VoteYes, 400)
	vote(losing.ProposalID, "voter-2", domain.VoteNo, 800)
	vote(quiet.ProposalID, "voter-3", domain.VoteYes, 500) // 5% turnout against 10% quorum

	resolved, err := s.ResolveDueProposals(ctx, now, 0.1)
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	byID := make(map[string]*schema.Proposal, len(resolved))
	for _, p := range resolved {
		byID[p.ProposalID] = p
	}
	assert.Equal(t, domain.ProposalStatusPassed, byID[passing.ProposalID].Status)
	assert.Equal(t, domain.ProposalStatusRejected, byID[losing.ProposalID].Status)
	assert.Equal(t, domain.ProposalStatusRejected, byID[quiet.ProposalID].Status)

	stillOpen, err := s.GetProposalByID(ctx, open.ProposalID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusActive, stillOpen.Status)

	// Re-running resolves nothing further
	again, err := s.ResolveDueProposals(ctx, now, 0.1)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func testVetoProposal(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	proposal := newProposal(now.Add(time.Hour), 10_000)
	require.NoError(t, s.CreateProposal(ctx, proposal))

	vetoed, err := s.VetoProposal(ctx, proposal.ProposalID, "founder-1", now)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusVetoed, vetoed.Status)
	require.NotNil(t, vetoed.VetoedBy)
	assert.Equal(t, "founder-1", *vetoed.VetoedBy)

	// Only active proposals can be vetoed
	_, err = s.VetoProposal(ctx, proposal.ProposalID, "founder-1", now)
	require.ErrorIs(t, err, domain.ErrProposalClosed)

	_, err = s.VetoProposal(ctx, "missing", "founder-1", now)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
