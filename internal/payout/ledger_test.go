package payout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/logger"
	"github.com/origin-platform/rights-ledger/internal/mocks"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true, BreadcrumbLevel: zapcore.DebugLevel}); err != nil {
		panic(err)
	}
	m.Run()
}

func TestBalance(t *testing.T) {
	t.Run("existing balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetCreatorBalance(gomock.Any(), "creator-1").
			Return(&schema.CreatorBalance{CreatorID: "creator-1", PendingTotal: 300, AvailableTotal: 700}, nil)

		ledger := NewLedger(mockStore, mocks.NewMockClock(ctrl), nil, 100)
		balance, err := ledger.Balance(context.Background(), "creator-1")
		require.NoError(t, err)
		assert.Equal(t, int64(300), balance.PendingTotal)
		assert.Equal(t, int64(700), balance.AvailableTotal)
	})

	t.Run("unknown creator gets zero balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetCreatorBalance(gomock.Any(), "creator-new").
			Return(nil, nil)

		ledger := NewLedger(mockStore, mocks.NewMockClock(ctrl), nil, 100)
		balance, err := ledger.Balance(context.Background(), "creator-new")
		require.NoError(t, err)
		assert.Zero(t, balance.PendingTotal)
		assert.Zero(t, balance.AvailableTotal)
	})
}

func TestRequestWithdrawal(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("reserves and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockClock := mocks.NewMockClock(ctrl)
		mockPublisher := mocks.NewMockPublisher(ctrl)

		mockClock.EXPECT().Now().Return(now)
		mockStore.EXPECT().
			CreateWithdrawal(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w *schema.Withdrawal) error {
				assert.Equal(t, domain.WithdrawalStatusRequested, w.Status)
				assert.Equal(t, int64(500), w.Amount)
				assert.NotEmpty(t, w.WithdrawalID)
				return nil
			})
		mockPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.PlatformEvent) error {
				assert.Equal(t, domain.EventWithdrawalUpdated, event.Type)
				return nil
			})

		ledger := NewLedger(mockStore, mockClock, mockPublisher, 100)
		withdrawal, err := ledger.RequestWithdrawal(context.Background(), "creator-1", 500, domain.WithdrawalMethodAlipay)
		require.NoError(t, err)
		assert.Equal(t, "creator-1", withdrawal.CreatorID)
	})

	t.Run("below minimum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := NewLedger(mocks.NewMockStore(ctrl), mocks.NewMockClock(ctrl), nil, 100)
		_, err := ledger.RequestWithdrawal(context.Background(), "creator-1", 99, domain.WithdrawalMethodAlipay)
		assert.True(t, errors.Is(err, domain.ErrBelowMinimum))
	})

	t.Run("insufficient balance surfaces from store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockClock := mocks.NewMockClock(ctrl)
		mockClock.EXPECT().Now().Return(now)
		mockStore.EXPECT().
			CreateWithdrawal(gomock.Any(), gomock.Any()).
			Return(domain.ErrInsufficientBalance)

		ledger := NewLedger(mockStore, mockClock, nil, 100)
		_, err := ledger.RequestWithdrawal(context.Background(), "creator-1", 5000, domain.WithdrawalMethodBank)
		assert.True(t, errors.Is(err, domain.ErrInsufficientBalance))
	})

	t.Run("unsupported method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := NewLedger(mocks.NewMockStore(ctrl), mocks.NewMockClock(ctrl), nil, 100)
		_, err := ledger.RequestWithdrawal(context.Background(), "creator-1", 500, domain.WithdrawalMethod("cash"))
		assert.Error(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("valid transition publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockClock := mocks.NewMockClock(ctrl)
		mockPublisher := mocks.NewMockPublisher(ctrl)

		mockClock.EXPECT().Now().Return(now)
		mockStore.EXPECT().
			UpdateWithdrawalStatus(gomock.Any(), "wd-1", domain.WithdrawalStatusProcessing, now).
			Return(&schema.Withdrawal{WithdrawalID: "wd-1", CreatorID: "creator-1", Status: domain.WithdrawalStatusProcessing, UpdatedAt: now}, nil)
		mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		ledger := NewLedger(mockStore, mockClock, mockPublisher, 100)
		withdrawal, err := ledger.UpdateStatus(context.Background(), "wd-1", domain.WithdrawalStatusProcessing)
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusProcessing, withdrawal.Status)
	})

	t.Run("invalid transition surfaces from store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockClock := mocks.NewMockClock(ctrl)
		mockClock.EXPECT().Now().Return(now)
		mockStore.EXPECT().
			UpdateWithdrawalStatus(gomock.Any(), "wd-1", domain.WithdrawalStatusCompleted, now).
			Return(nil, domain.ErrInvalidTransition)

		ledger := NewLedger(mockStore, mockClock, nil, 100)
		_, err := ledger.UpdateStatus(context.Background(), "wd-1", domain.WithdrawalStatusCompleted)
		assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
	})
}

func TestWithdrawalStateMachine(t *testing.T) {
	assert.True(t, domain.WithdrawalStatusRequested.CanTransitionTo(domain.WithdrawalStatusProcessing))
	assert.True(t, domain.WithdrawalStatusRequested.CanTransitionTo(domain.WithdrawalStatusRejected))
	assert.True(t, domain.WithdrawalStatusProcessing.CanTransitionTo(domain.WithdrawalStatusCompleted))
	assert.True(t, domain.WithdrawalStatusProcessing.CanTransitionTo(domain.WithdrawalStatusRejected))

	assert.False(t, domain.WithdrawalStatusRequested.CanTransitionTo(domain.WithdrawalStatusCompleted))
	assert.False(t, domain.WithdrawalStatusCompleted.CanTransitionTo(domain.WithdrawalStatusRejected))
	assert.False(t, domain.WithdrawalStatusRejected.CanTransitionTo(domain.WithdrawalStatusProcessing))
	assert.False(t, domain.WithdrawalStatusCompleted.CanTransitionTo(domain.WithdrawalStatusRequested))
}
