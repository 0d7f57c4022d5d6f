package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RelayTarget identifies one physical printer to a local print relay.
type RelayTarget struct {
	Name       string `json:"name"`
	IPAddress  string `json:"ip_address"`
	Port       int    `json:"port"`
	MacAddress string `json:"mac_address,omitempty"`
	Copies     int    `json:"copies"`
}

// RelayJob is the payload accepted by the relay's /print endpoint.
type RelayJob struct {
	Printers []RelayTarget `json:"printers"`
	Content  string        `json:"content"`
}

// RelayClient submits plain-text print jobs to a print relay running on the
// store LAN (typically http://localhost:5000). The relay owns the hardware;
// this client only reports whether the job was accepted.
type RelayClient struct {
	baseURL string
	client  *http.Client
}

// NewRelayClient creates a relay client. Timeout is fixed; a failed submit
// falls through to the next dispatch tier rather than retrying.
func NewRelayClient(baseURL string, timeout time.Duration) *RelayClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &RelayClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Submit posts a job to the relay and returns the relay's textual result.
func (c *RelayClient) Submit(ctx context.Context, job RelayJob) (string, error) {
	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("relay: failed to encode job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/print", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("relay: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay: request failed: %w", err)
	}
	defer resp.Body.Close()

	result, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return string(result), fmt.Errorf("relay: job rejected with status %d", resp.StatusCode)
	}
	return string(result), nil
}

// Available probes the relay with a short deadline.
func (c *RelayClient) Available(ctx context.Context) bool {
	probe, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(probe, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < 500
}
