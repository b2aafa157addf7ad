package crawl

import (
	"context"
	"time"

	"github.com/sutaryash32/expodex"
	"golang.org/x/time/rate"
)

var _ expodex.Limiter = (*Throttle)(nil)

// Throttle paces requests using a token bucket with a burst of 1, so
// consecutive fetches are separated by at least the configured delay.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle enforcing delay between requests.
// A zero or negative delay disables pacing.
func NewThrottle(delay time.Duration) *Throttle {
	if delay <= 0 {
		return &Throttle{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the politeness delay allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
