package timestamp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/domain"
)

// Config holds the time-attestation client configuration
type Config struct {
	// URL is the attestation endpoint
	URL string
	// Authority is the name recorded on attestations from this source
	Authority string
	// Timeout bounds a single attestation request
	Timeout time.Duration
}

// Client obtains trusted timestamps from an external attestation service
// over HTTP. The service binds the submitted digest to its own clock and
// returns a verification token.
type Client struct {
	url       string
	authority string
	http      *http.Client
}

// NewClient creates a time-attestation client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:       cfg.URL,
		authority: cfg.Authority,
		http:      &http.Client{Timeout: timeout},
	}
}

var _ adapter.TimestampAuthority = (*Client)(nil)

type attestRequest struct {
	Digest string `json:"digest"`
}

type attestResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Token     string    `json:"token"`
}

// AttestTime submits the digest and returns the trusted timestamp
func (c *Client) AttestTime(ctx context.Context, digest string) (*domain.Attestation, error) {
	body, err := json.Marshal(attestRequest{Digest: digest})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attestation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build attestation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("attestation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attestation service returned status %d", resp.StatusCode)
	}

	var decoded attestResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode attestation response: %w", err)
	}
	if decoded.Timestamp.IsZero() {
		return nil, fmt.Errorf("attestation response carries no timestamp")
	}

	return &domain.Attestation{
		Timestamp: decoded.Timestamp,
		Authority: c.authority,
		Token:     decoded.Token,
	}, nil
}
