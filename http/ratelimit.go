package http

import (
	"github.com/fwojciec/wikicopy"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond keeps the client well inside public API limits.
const DefaultRequestsPerSecond = 5.0

var _ wikicopy.RateLimiter = (*rate.Limiter)(nil)

// WithRequestsPerSecond paces every request the client sends, searches and
// content fetches alike, through one token bucket with a burst of 1.
// A non-positive rps leaves the client unthrottled.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}
