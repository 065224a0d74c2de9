package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/logger"
	"github.com/origin-platform/rights-ledger/internal/mocks"
	"github.com/origin-platform/rights-ledger/internal/store"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true, BreadcrumbLevel: zapcore.DebugLevel}); err != nil {
		panic(err)
	}
	m.Run()
}

func TestSettlementSweepCycleDrainsBacklog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	mockClock.EXPECT().Now().Return(now).AnyTimes()
	mockClock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	after := make(chan time.Time, 1)
	after <- now
	mockClock.EXPECT().After(gomock.Any()).Return(after)

	// Full batch first, then a short batch ends the cycle
	gomock.InOrder(
		mockStore.EXPECT().SettleDueEntries(gomock.Any(), now, 10).
			Return(&store.SettlementResult{EntriesSettled: 10, AmountSettled: 5000}, nil),
		mockStore.EXPECT().SettleDueEntries(gomock.Any(), now, 10).
			Return(&store.SettlementResult{EntriesSettled: 3, AmountSettled: 900}, nil),
	)

	s := NewSettlementSweeper(&SettlementSweeperConfig{BatchSize: 10, CycleInterval: time.Minute}, mockStore, mockClock).(*settlementSweeper)
	err := s.runSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestSettlementSweeperStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		SettleDueEntries(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&store.SettlementResult{}, nil).
		AnyTimes()

	s := NewSettlementSweeper(&SettlementSweeperConfig{BatchSize: 10, CycleInterval: 5 * time.Millisecond}, mockStore, adapter.NewClock())

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
