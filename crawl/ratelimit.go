package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/docgrab"
	"golang.org/x/time/rate"
)

var _ docgrab.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces the polite delay between fetches using per-domain
// token buckets. Each domain gets its own limiter with a burst of 1, so
// the first fetch to a domain proceeds immediately and every subsequent
// fetch waits out the configured delay. The wait is context-cancellable,
// which makes the polite pause one of the run's two suspension points.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewDomainLimiter creates a DomainLimiter with the given inter-fetch
// delay per domain. A zero or negative delay disables waiting.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.delay <= 0 {
		return ctx.Err()
	}

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(d.delay), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
