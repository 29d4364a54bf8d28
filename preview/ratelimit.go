package preview

import (
	"context"
	"sync"

	"github.com/fwojciec/ogpeek"
	"golang.org/x/time/rate"
)

var _ ogpeek.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces requests to each host with its own token bucket.
// Requests to different hosts do not wait on each other.
type DomainLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter allows rps requests per second to each domain, with no
// bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.bucket(domain).Wait(ctx)
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[domain] = b
	}
	return b
}
