package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/podiumlab/podium/internal/domain/types"
)

// Client fetches the derived datasets from a running service.
type Client struct {
	base   string
	client *http.Client
}

// NewClient creates a dataset client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base:   baseURL,
		client: &http.Client{Timeout: timeout},
	}
}

// Health checks the service is up by scraping its metrics endpoint.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// Refresh asks the service to reload its sources.
func (c *Client) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/refresh", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh failed with status: %d", resp.StatusCode)
	}
	return nil
}

// Participation fetches the yearly participation trend.
func (c *Client) Participation(ctx context.Context) ([]types.ParticipationPoint, error) {
	var out []types.ParticipationPoint
	if err := c.getJSON(ctx, "/datasets/participation", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Medals fetches the top-limit medal leaderboard.
func (c *Client) Medals(ctx context.Context, limit int) ([]types.MedalRow, error) {
	var out []types.MedalRow
	if err := c.getJSON(ctx, fmt.Sprintf("/datasets/medals?limit=%d", limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ages fetches the age distribution for the configured edition.
func (c *Client) Ages(ctx context.Context) ([]types.AgeShare, error) {
	var out []types.AgeShare
	if err := c.getJSON(ctx, "/datasets/ages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordsPayload mirrors the records endpoint response.
type RecordsPayload struct {
	AsOf    time.Time          `json:"as_of"`
	Palette map[string]string  `json:"palette"`
	Spans   []types.RecordSpan `json:"spans"`
}

// Records fetches the world-record validity spans.
func (c *Client) Records(ctx context.Context) (*RecordsPayload, error) {
	var out RecordsPayload
	if err := c.getJSON(ctx, "/datasets/records", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s failed with status %d: %s", path, resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
