package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/logger"
)

// Config holds the per host limits of outbound requests
type Config struct {
	RequestsPerSecond float64
	Burst             int
}

// HTTPClient wraps an adapter.HTTPClient so that requests to each host
// are throttled independently. Gateways and the marketplace API share one process.
type HTTPClient struct {
	inner    adapter.HTTPClient
	config   Config
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewHTTPClient returns inner unchanged when limiting is disabled
func NewHTTPClient(inner adapter.HTTPClient, cfg Config) adapter.HTTPClient {
	if cfg.RequestsPerSecond <= 0 {
		return inner
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	logger.Info("Outbound HTTP rate limiting enabled",
		zap.Float64("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst))

	return &HTTPClient{
		inner:    inner,
		config:   cfg,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (c *HTTPClient) Get(ctx context.Context, rawURL string, result interface{}) error {
	if err := c.wait(ctx, rawURL); err != nil {
		return err
	}
	return c.inner.Get(ctx, rawURL, result)
}

func (c *HTTPClient) Head(ctx context.Context, rawURL string) (*http.Response, error) {
	if err := c.wait(ctx, rawURL); err != nil {
		return nil, err
	}
	return c.inner.Head(ctx, rawURL)
}

func (c *HTTPClient) wait(ctx context.Context, rawURL string) error {
	if err := c.limiter(hostOf(rawURL)).Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", rawURL, err)
	}
	return nil
}

func (c *HTTPClient) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(c.config.RequestsPerSecond), c.config.Burst)
		c.limiters[host] = l
	}
	return l
}

// hostOf falls back to the raw string so unparsable URLs still share a bucket
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
