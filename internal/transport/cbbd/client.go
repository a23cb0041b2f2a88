// Package cbbd is the outbound client for the college-basketball statistics
// provider. The secret key travels as a bearer token and is injected
// server-side; response payloads are relayed opaque.
package cbbd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/courtside-cloud/hooprelay/internal/domain"
	"github.com/courtside-cloud/hooprelay/internal/metrics"
)

const (
	providerName     = "cbbd"
	credentialEnvKey = "CBBD_API_KEY"

	defaultBaseURL = "https://api.collegebasketballdata.com"
	defaultTimeout = 30 * time.Second
)

// Client calls the statistics provider.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// Config holds the statistics provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// New creates a statistics provider client. An empty APIKey is allowed:
// calls then short-circuit with a configuration error instead of dialing out.
func New(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Ratings fetches adjusted team efficiency ratings for a season.
func (c *Client) Ratings(ctx context.Context, season string) (domain.Result, error) {
	return c.relay(ctx, "/ratings/adjusted", url.Values{"season": {season}})
}

// Games fetches the games list for a season.
func (c *Client) Games(ctx context.Context, season string) (domain.Result, error) {
	return c.relay(ctx, "/games", url.Values{"season": {season}})
}

// Teams fetches the teams list.
func (c *Client) Teams(ctx context.Context) (domain.Result, error) {
	return c.relay(ctx, "/teams", nil)
}

func (c *Client) relay(ctx context.Context, path string, query url.Values) (domain.Result, error) {
	if c.apiKey == "" {
		return domain.Result{}, domain.NewCredentialMissing(credentialEnvKey)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return domain.Result{}, fmt.Errorf("build stats request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(providerName, "transport").Inc()
		return domain.Result{}, fmt.Errorf("stats request: %v: %w", err, domain.ErrUpstreamUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(providerName, "transport").Inc()
		return domain.Result{}, fmt.Errorf("read stats response: %v: %w", err, domain.ErrUpstreamUnavailable)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerName, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(providerName).Observe(duration.Seconds())

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("stats upstream error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return domain.ResultFromUpstream(resp.StatusCode, body), nil
	}

	if !json.Valid(body) {
		metrics.UpstreamErrorsTotal.WithLabelValues(providerName, "malformed_response").Inc()
		return domain.Result{}, fmt.Errorf("malformed stats response: %w", domain.ErrUpstreamUnavailable)
	}

	return domain.Result{StatusCode: resp.StatusCode, Body: body}, nil
}
