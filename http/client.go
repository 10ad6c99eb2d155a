// Package http implements wikicopy services on top of the MediaWiki Action API.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/wikicopy"
)

// DefaultFetchTimeout is the default timeout for API requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to the API as its etiquette requires.
const DefaultUserAgent = "wikicopy/0.1 (https://github.com/fwojciec/wikicopy)"

// Client performs MediaWiki Action API requests against a single site.
type Client struct {
	client    *http.Client
	baseURL   string
	timeout   time.Duration
	userAgent string
	limiter   wikicopy.RateLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithBaseURL sets the site root, e.g. https://en.wikipedia.org.
// Defaults to wikicopy.DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimiter throttles requests through limiter.
func WithRateLimiter(limiter wikicopy.RateLimiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient creates a new API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   wikicopy.DefaultBaseURL,
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// BaseURL returns the site root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// apiError is the error envelope of the Action API.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// err converts an API error into an application error.
func (e *apiError) err() error {
	switch e.Code {
	case "missingtitle", "nosuchpageid", "invalidtitle":
		return wikicopy.Errorf(wikicopy.ENOTFOUND, "article not found: %s", e.Info)
	}
	return wikicopy.Errorf(wikicopy.EUNAVAILABLE, "API error %s: %s", e.Code, e.Info)
}

// get calls the API with params and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, params url.Values, v any) error {
	params.Set("format", "json")
	params.Set("formatversion", "2")
	endpoint := c.baseURL + "/w/api.php?" + params.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return wikicopy.Errorf(wikicopy.EUNAVAILABLE, "rate limiter: %v", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return wikicopy.Errorf(wikicopy.EINVALID, "invalid request: %v", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return wikicopy.Errorf(wikicopy.EUNAVAILABLE, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return wikicopy.Errorf(wikicopy.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, params.Get("action"))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return wikicopy.Errorf(wikicopy.EUNAVAILABLE, "malformed %s response: %v", params.Get("action"), err)
	}

	return nil
}
