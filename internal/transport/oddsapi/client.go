// Package oddsapi is the outbound client for the betting-lines provider.
// Unlike the statistics provider, this API expects the secret key as a
// query parameter rather than a header.
package oddsapi

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
	providerName     = "oddsapi"
	credentialEnvKey = "ODDS_API_KEY"

	defaultBaseURL    = "https://api.the-odds-api.com/v4"
	defaultSport      = "basketball_ncaab"
	defaultRegions    = "us"
	defaultMarkets    = "spreads,totals"
	defaultOddsFormat = "american"
	defaultTimeout    = 30 * time.Second
)

// Client calls the odds provider.
type Client struct {
	http       *http.Client
	baseURL    string
	apiKey     string
	sport      string
	regions    string
	markets    string
	oddsFormat string
	logger     *zap.Logger
}

// Config holds the odds provider settings. Zero values fall back to the
// NCAAB spreads/totals defaults.
type Config struct {
	APIKey     string
	BaseURL    string
	Sport      string
	Regions    string
	Markets    string
	OddsFormat string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// New creates an odds provider client. An empty APIKey is allowed: calls
// then short-circuit with a configuration error instead of dialing out.
func New(cfg *Config) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		sport:      cfg.Sport,
		regions:    cfg.Regions,
		markets:    cfg.Markets,
		oddsFormat: cfg.OddsFormat,
		logger:     cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.sport == "" {
		c.sport = defaultSport
	}
	if c.regions == "" {
		c.regions = defaultRegions
	}
	if c.markets == "" {
		c.markets = defaultMarkets
	}
	if c.oddsFormat == "" {
		c.oddsFormat = defaultOddsFormat
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c.http = &http.Client{Timeout: timeout}

	return c
}

// Odds fetches current betting lines for the configured sport.
func (c *Client) Odds(ctx context.Context) (domain.Result, error) {
	if c.apiKey == "" {
		return domain.Result{}, domain.NewCredentialMissing(credentialEnvKey)
	}

	query := url.Values{
		"apiKey":     {c.apiKey},
		"regions":    {c.regions},
		"markets":    {c.markets},
		"oddsFormat": {c.oddsFormat},
	}
	endpoint := fmt.Sprintf("%s/sports/%s/odds/?%s", c.baseURL, c.sport, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return domain.Result{}, fmt.Errorf("build odds request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(providerName, "transport").Inc()
		return domain.Result{}, fmt.Errorf("odds request: %v: %w", err, domain.ErrUpstreamUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(providerName, "transport").Inc()
		return domain.Result{}, fmt.Errorf("read odds response: %v: %w", err, domain.ErrUpstreamUnavailable)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerName, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(providerName).Observe(duration.Seconds())

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("odds upstream error", zap.Int("status", resp.StatusCode))
		return domain.ResultFromUpstream(resp.StatusCode, body), nil
	}

	if !json.Valid(body) {
		metrics.UpstreamErrorsTotal.WithLabelValues(providerName, "malformed_response").Inc()
		return domain.Result{}, fmt.Errorf("malformed odds response: %w", domain.ErrUpstreamUnavailable)
	}

	return domain.Result{StatusCode: resp.StatusCode, Body: body}, nil
}
