package scrape

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostLimiter paces requests per hostname: the first request to a host goes
// through immediately, every later one waits until a full delay has passed
// since the previous request to that host. One limiter is shared across all
// categories of a run so parallel categories hitting the same host stay paced
// too.
type HostLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
}

func NewHostLimiter(delay time.Duration) *HostLimiter {
	r := rate.Inf
	if delay > 0 {
		r = rate.Every(delay)
	}
	return &HostLimiter{
		m: make(map[string]*rate.Limiter),
		r: r,
	}
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if lim, ok := hl.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(hl.r, 1)
	hl.m[host] = lim
	return lim
}

func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return hl.limiterFor("_").Wait(ctx)
	}
	return hl.limiterFor(u.Host).Wait(ctx)
}
