package hooprelay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Snapshot mirrors the proxy's usage counters.
type Snapshot struct {
	Today          int `json:"today"`
	TodayRemaining int `json:"todayRemaining"`
	Month          int `json:"month"`
	DailyLimit     int `json:"dailyLimit"`
}

// Health is the proxy's health report.
type Health struct {
	Status  string   `json:"status"`
	Service string   `json:"service"`
	Usage   Snapshot `json:"usage"`
}

// Client is the hooprelay API client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the proxy at baseURL.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// Health reports proxy liveness together with the current usage counters.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.getJSON(ctx, "/health", nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

// Usage returns the current call-usage snapshot. Reading usage never
// consumes quota.
func (c *Client) Usage(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	if err := c.getJSON(ctx, "/api/usage", nil, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Odds returns current betting odds as relayed from the odds provider.
func (c *Client) Odds(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/odds", nil)
}

// Ratings returns adjusted team ratings for a season. An empty season
// uses the proxy's default.
func (c *Client) Ratings(ctx context.Context, season string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/ratings", seasonQuery(season))
}

// Games returns the game schedule for a season. An empty season uses the
// proxy's default.
func (c *Client) Games(ctx context.Context, season string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/games", seasonQuery(season))
}

// Teams returns the team directory.
func (c *Client) Teams(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/teams", nil)
}

func seasonQuery(season string) url.Values {
	if season == "" {
		return nil
	}
	return url.Values{"season": []string{season}}
}

func (c *Client) getRaw(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("hooprelay: decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("hooprelay: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hooprelay: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hooprelay: read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
