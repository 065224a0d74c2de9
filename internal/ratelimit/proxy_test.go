package ratelimit

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/origin-platform/rights-ledger/internal/config"
	"github.com/origin-platform/rights-ledger/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true, BreadcrumbLevel: zapcore.DebugLevel}); err != nil {
		panic(err)
	}
	m.Run()
}

func testConfig(rps int) config.RateLimiterConfig {
	return config.RateLimiterConfig{
		MaxWorkers:   4,
		MaxQueueSize: 64,
		Providers: map[string]config.RateLimitConfig{
			ProviderAnchor: {
				RequestsPerSecond: rps,
				Burst:             rps,
				MaxQueueTime:      5 * time.Second,
			},
		},
	}
}

func TestRequestPassesThroughResult(t *testing.T) {
	p, err := NewProxy(testConfig(100))
	require.NoError(t, err)
	defer p.Close()

	got, err := Request(context.Background(), p, ProviderAnchor, func(ctx context.Context) (string, error) {
		return "anchored", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "anchored", got)
}

func TestRequestPropagatesError(t *testing.T) {
	p, err := NewProxy(testConfig(100))
	require.NoError(t, err)
	defer p.Close()

	wantErr := errors.New("rpc unavailable")
	_, err = Request(context.Background(), p, ProviderAnchor, func(ctx context.Context) (string, error) {
		return "", wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestRequestUnknownProvider(t *testing.T) {
	p, err := NewProxy(testConfig(100))
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Request(context.Background(), "unknown", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorContains(t, err, "not configured")
}

func TestNilProxyExecutesDirectly(t *testing.T) {
	got, err := Request(context.Background(), nil, ProviderTimestamp, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestRequestRespectsRateLimit(t *testing.T) {
	// 1 rps with burst 1: the second call must wait roughly a second
	cfg := testConfig(1)
	p, err := NewProxy(cfg)
	require.NoError(t, err)
	defer p.Close()

	ctx := context.Background()
	start := time.Now()
	for range 2 {
		_, err := Request(ctx, p, ProviderAnchor, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, nil
		})
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
}

func TestRequestQueueTimeout(t *testing.T) {
	cfg := testConfig(1)
	provider := cfg.Providers[ProviderAnchor]
	provider.MaxQueueTime = 50 * time.Millisecond
	cfg.Providers[ProviderAnchor] = provider

	p, err := NewProxy(cfg)
	require.NoError(t, err)
	defer p.Close()

	ctx := context.Background()

	// Drain the single burst token, then the next wait exceeds the queue budget
	_, err = Request(ctx, p, ProviderAnchor, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, nil
	})
	require.NoError(t, err)

	_, err = Request(ctx, p, ProviderAnchor, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, nil
	})
	assert.Error(t, err)
}

func TestRequestAfterClose(t *testing.T) {
	p, err := NewProxy(testConfig(100))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	_, err = p.Request(context.Background(), ProviderAnchor, func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorContains(t, err, "closed")
}

func TestCloseWaitsForInFlightRequests(t *testing.T) {
	p, err := NewProxy(testConfig(100))
	require.NoError(t, err)

	var completed atomic.Bool
	started := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_, _ = Request(context.Background(), p, ProviderAnchor, func(ctx context.Context) (struct{}, error) {
			close(started)
			time.Sleep(100 * time.Millisecond)
			completed.Store(true)
			return struct{}{}, nil
		})
		close(done)
	}()

	<-started
	require.NoError(t, p.Close())
	<-done
	assert.True(t, completed.Load())
}

func TestValidateConfig(t *testing.T) {
	_, err := NewProxy(config.RateLimiterConfig{})
	assert.ErrorContains(t, err, "at least one provider")

	_, err = NewProxy(config.RateLimiterConfig{
		Providers: map[string]config.RateLimitConfig{
			ProviderAnchor: {RequestsPerSecond: 0},
		},
	})
	assert.ErrorContains(t, err, "requests_per_second")
}
