package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Resolver answers ownership questions about profiles in the external
// identity system and resolves a profile to its current payout address.
// Resolution is always live: the ledger never caches payout addresses, so a
// sale pays whoever controls the profile at purchase time.
type Resolver interface {
	IsOwnerOrDelegate(ctx context.Context, profileID uint64, address string) (bool, error)
	ResolveAddress(ctx context.Context, profileID uint64) (string, error)
}

// Client is an HTTP implementation of Resolver against the identity service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Resolver backed by the identity service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsOwnerOrDelegate reports whether address currently controls the profile,
// either directly or via delegation.
func (c *Client) IsOwnerOrDelegate(ctx context.Context, profileID uint64, address string) (bool, error) {
	url := fmt.Sprintf("%s/profiles/%d/authorized?address=%s", c.baseURL, profileID, address)
	var out struct {
		Authorized bool `json:"authorized"`
	}
	if err := c.getJSON(ctx, url, &out); err != nil {
		return false, fmt.Errorf("authorization check for profile %d: %w", profileID, err)
	}
	return out.Authorized, nil
}

// ResolveAddress returns the profile's current payout address.
func (c *Client) ResolveAddress(ctx context.Context, profileID uint64) (string, error) {
	url := fmt.Sprintf("%s/profiles/%d/address", c.baseURL, profileID)
	var out struct {
		Address string `json:"address"`
	}
	if err := c.getJSON(ctx, url, &out); err != nil {
		return "", fmt.Errorf("address resolution for profile %d: %w", profileID, err)
	}
	if out.Address == "" {
		return "", fmt.Errorf("identity service returned empty address for profile %d", profileID)
	}
	return out.Address, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
