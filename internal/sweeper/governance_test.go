package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/governance"
	"github.com/origin-platform/rights-ledger/internal/mocks"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

func newTestTally(ctrl *gomock.Controller, mockStore *mocks.MockStore, mockClock *mocks.MockClock) *governance.Tally {
	return governance.NewTally(
		mockStore,
		mockClock,
		mocks.NewMockPublisher(ctrl),
		mocks.NewMockVotingPowerSource(ctrl),
		mocks.NewMockFounderVerifier(ctrl),
		500,
		0.1,
	)
}

func TestGovernanceSweepCycleResolvesDueProposals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)

	mockClock.EXPECT().Now().Return(now).AnyTimes()
	after := make(chan time.Time, 1)
	after <- now
	mockClock.EXPECT().After(gomock.Any()).Return(after)

	resolved := []*schema.Proposal{
		{ProposalID: "prop-1", Status: domain.ProposalStatusPassed, YesWeight: 800, NoWeight: 200},
		{ProposalID: "prop-2", Status: domain.ProposalStatusRejected, YesWeight: 100, NoWeight: 400},
	}
	mockStore.EXPECT().ResolveDueProposals(gomock.Any(), now, 0.1).Return(resolved, nil)
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	tally := governance.NewTally(
		mockStore, mockClock, mockPublisher,
		mocks.NewMockVotingPowerSource(ctrl),
		mocks.NewMockFounderVerifier(ctrl),
		500, 0.1,
	)

	s := NewGovernanceSweeper(&GovernanceSweeperConfig{CycleInterval: time.Minute}, tally, mockClock).(*governanceSweeper)
	err := s.runSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestGovernanceSweeperStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Now()).AnyTimes()
	mockStore.EXPECT().
		ResolveDueProposals(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	tally := newTestTally(ctrl, mockStore, mockClock)

	s := NewGovernanceSweeper(&GovernanceSweeperConfig{CycleInterval: 5 * time.Millisecond}, tally, adapter.NewClock())

	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(20 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not exit after stop")
	}
}
