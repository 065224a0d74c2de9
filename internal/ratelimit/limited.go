package ratelimit

import (
	"context"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/identity"
)

// limitedAnchor routes anchor calls through the proxy
type limitedAnchor struct {
	proxy Proxy
	inner adapter.AnchorClient
}

// WrapAnchorClient returns an anchor client whose calls are rate limited by
// the proxy under the anchor provider. A nil proxy passes calls straight through.
func WrapAnchorClient(p Proxy, inner adapter.AnchorClient) adapter.AnchorClient {
	return &limitedAnchor{proxy: p, inner: inner}
}

func (c *limitedAnchor) Anchor(ctx context.Context, contentHash string) (*domain.AnchorRef, error) {
	return Request(ctx, c.proxy, ProviderAnchor, func(ctx context.Context) (*domain.AnchorRef, error) {
		return c.inner.Anchor(ctx, contentHash)
	})
}

// limitedTimestamp routes attestation calls through the proxy
type limitedTimestamp struct {
	proxy Proxy
	inner adapter.TimestampAuthority
}

// WrapTimestampAuthority returns a timestamp authority whose calls are rate
// limited by the proxy under the timestamp provider.
func WrapTimestampAuthority(p Proxy, inner adapter.TimestampAuthority) adapter.TimestampAuthority {
	return &limitedTimestamp{proxy: p, inner: inner}
}

func (c *limitedTimestamp) AttestTime(ctx context.Context, digest string) (*domain.Attestation, error) {
	return Request(ctx, c.proxy, ProviderTimestamp, func(ctx context.Context) (*domain.Attestation, error) {
		return c.inner.AttestTime(ctx, digest)
	})
}

// limitedVotingPower routes identity-service calls through the proxy
type limitedVotingPower struct {
	proxy Proxy
	inner identity.VotingPowerSource
}

// WrapVotingPowerSource returns a voting power source whose calls are rate
// limited by the proxy under the identity provider.
func WrapVotingPowerSource(p Proxy, inner identity.VotingPowerSource) identity.VotingPowerSource {
	return &limitedVotingPower{proxy: p, inner: inner}
}

func (c *limitedVotingPower) VotingPower(ctx context.Context, voterID string) (int64, error) {
	return Request(ctx, c.proxy, ProviderIdentity, func(ctx context.Context) (int64, error) {
		return c.inner.VotingPower(ctx, voterID)
	})
}

func (c *limitedVotingPower) TotalEligibleWeight(ctx context.Context) (int64, error) {
	return Request(ctx, c.proxy, ProviderIdentity, func(ctx context.Context) (int64, error) {
		return c.inner.TotalEligibleWeight(ctx)
	})
}
