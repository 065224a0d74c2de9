package identityhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/origin-platform/rights-ledger/internal/identity"
)

// Config holds the identity-service client configuration
type Config struct {
	// BaseURL is the identity service root, e.g. http://identity:8081
	BaseURL string
	// Timeout bounds a single lookup
	Timeout time.Duration
}

// Client resolves governance voting power from the identity service. Voting
// power is derived from contribution scores outside the ledger core, so the
// tally always reads it fresh through this client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an identity-service client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

var _ identity.VotingPowerSource = (*Client)(nil)

type weightResponse struct {
	Weight int64 `json:"weight"`
}

type totalWeightResponse struct {
	TotalWeight int64 `json:"total_weight"`
}

// VotingPower returns the current weight of a voter
func (c *Client) VotingPower(ctx context.Context, voterID string) (int64, error) {
	endpoint := fmt.Sprintf("%s/v1/voters/%s/weight", c.baseURL, url.PathEscape(voterID))

	var decoded weightResponse
	if err := c.get(ctx, endpoint, &decoded); err != nil {
		return 0, fmt.Errorf("failed to resolve voting power for %s: %w", voterID, err)
	}
	return decoded.Weight, nil
}

// TotalEligibleWeight returns the total weight across all eligible voters
func (c *Client) TotalEligibleWeight(ctx context.Context) (int64, error) {
	endpoint := c.baseURL + "/v1/voters/total-weight"

	var decoded totalWeightResponse
	if err := c.get(ctx, endpoint, &decoded); err != nil {
		return 0, fmt.Errorf("failed to resolve total eligible weight: %w", err)
	}
	return decoded.TotalWeight, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
