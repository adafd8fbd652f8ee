// Package webhook talks to the remote automation webhook that owns all
// persistence. One endpoint returns the full snapshot, the other accepts
// change events. The client reports failures to its caller; retry policy
// belongs to the outbox.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an HTTP client for the automation webhook endpoints.
type Client struct {
	httpClient  *http.Client
	retrieveURL string
	changeURL   string
}

// NewClient creates a Client for the given retrieve and change endpoints.
func NewClient(retrieveURL, changeURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		retrieveURL: retrieveURL,
		changeURL:   changeURL,
	}
}

// FetchSnapshot retrieves the full transaction list and account balances.
// The webhook wraps its single response object in a one-element array; both
// wrapped and bare forms are accepted.
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.retrieveURL, nil)
	if err != nil {
		return nil, fmt.Errorf("webhook: build retrieve request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook: retrieve: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("webhook: retrieve returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("webhook: read retrieve body: %w", err)
	}

	envelope, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("webhook: retrieve reported failure")
	}

	return envelope.Data.toSnapshot(), nil
}

// PostChange delivers one change event. Delivery is best-effort from the
// system's point of view; callers decide whether and how to retry.
func (c *Client) PostChange(ctx context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("webhook: marshal change event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.changeURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("webhook: build change request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post change: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook: change returned status %d", resp.StatusCode)
	}
	return nil
}

// decodeEnvelope handles the array-wrapped response the webhook emits as well
// as a bare object, for resilience against upstream flow edits.
func decodeEnvelope(body []byte) (*snapshotEnvelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var wrapped []snapshotEnvelope
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("webhook: decode retrieve array: %w", err)
		}
		if len(wrapped) == 0 {
			return nil, fmt.Errorf("webhook: retrieve returned empty array")
		}
		return &wrapped[0], nil
	}

	var envelope snapshotEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("webhook: decode retrieve body: %w", err)
	}
	return &envelope, nil
}
