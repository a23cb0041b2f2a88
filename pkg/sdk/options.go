package hooprelay

import (
	"net/http"
	"time"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
}

// WithHTTPClient sets a custom HTTP client. Useful for tests and for
// callers that need their own transport (proxies, instrumentation).
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithTimeout sets the per-request timeout. Default: 60s, sized to cover
// the proxy's own upstream round trip. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}
