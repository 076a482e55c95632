package scraper

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter enforces a minimum interval between outbound requests to the
// source site. It is safe for concurrent use; callers contending on Wait are
// serialized so the interval holds across all of them.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter that allows one request per minInterval.
// A non-positive interval disables limiting.
func NewLimiter(minInterval time.Duration) *Limiter {
	if minInterval <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Every(minInterval), 1)}
}

// Wait blocks until the next request may be issued or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
