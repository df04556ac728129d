// Package remote keeps the document on another instance of the site backend, using its
// public /api/data endpoint for both reads and writes.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"simorgh/internal/domain/holding"
)

const dataPath = "/api/data"

// maxErrorBody limits how much of a failed response ends up in an error message.
const maxErrorBody = 512

var _ holding.Storage = (*Storage)(nil)

// Storage is a holding.Storage backed by a remote HTTP endpoint.
type Storage struct {
	client   *http.Client
	endpoint string
}

// New creates a storage for the instance at baseURL. A nil client uses http.DefaultClient.
func New(baseURL string, client *http.Client) *Storage {
	if client == nil {
		client = http.DefaultClient
	}
	return &Storage{
		client:   client,
		endpoint: strings.TrimRight(baseURL, "/") + dataPath,
	}
}

// Read implements holding.Storage. A 404 or an empty body means nothing is stored.
func (s *Storage) Read(ctx context.Context) (*holding.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", s.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, holding.ErrNoDocument
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(http.MethodGet, s.endpoint, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, holding.ErrNoDocument
	}

	var snap holding.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &snap, nil
}

// Write implements holding.Storage. Only a 200 counts as durable; a 202 from the
// remote means it kept the document in memory only, which is a failure here.
func (s *Storage) Write(ctx context.Context, snap holding.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", s.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(http.MethodPost, s.endpoint, resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func statusError(method, endpoint string, resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("%s %s: unexpected status %d: %s",
		method, endpoint, resp.StatusCode, strings.TrimSpace(string(msg)))
}
