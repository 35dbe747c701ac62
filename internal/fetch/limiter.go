package fetch

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter rate-limits per hostname so concurrent extraction requests
// against the same board (www.linkedin.com, www.indeed.com, ...) stay polite.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(reqPerSec),
		burst:    burst,
	}
}

// WaitURL blocks until the URL's host has budget. Unparseable URLs share a
// single bucket; they will fail in the fetcher anyway.
func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	host := "unknown"
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Host
	}

	hl.mu.Lock()
	lim, ok := hl.limiters[host]
	if !ok {
		lim = rate.NewLimiter(hl.rps, hl.burst)
		hl.limiters[host] = lim
	}
	hl.mu.Unlock()

	return lim.Wait(ctx)
}
