// Package rate throttles outbound fetches per target host using token
// buckets from golang.org/x/time/rate.
package rate

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/pagebrief"
	"golang.org/x/time/rate"
)

var _ pagebrief.HostLimiter = (*HostLimiter)(nil)

// MinSweepSize is the number of tracked hosts at which idle buckets are first
// evicted.
const MinSweepSize = 1024

// HostLimiter keeps one token bucket per host, so concurrent analyses of
// different sites never wait on each other while a single site sees at most
// rps requests per second from this process.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	sweepAt  int
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second per
// host with the given burst. A non-positive rps disables limiting.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
		sweepAt:  MinSweepSize,
	}
}

// Wait blocks until a request to host is allowed. Host names are compared
// case-insensitively. Returns an error if the context is canceled or its
// deadline would pass before a token is available.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.limit == rate.Inf {
		return ctx.Err()
	}
	return l.limiter(strings.ToLower(host)).Wait(ctx)
}

// Len reports how many hosts currently have a bucket.
func (l *HostLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *HostLimiter) limiter(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[host]
	if !ok {
		if len(l.limiters) >= l.sweepAt {
			l.sweep(time.Now())
		}
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[host] = lim
	}
	return lim
}

// sweep drops buckets that have refilled completely. A full bucket behaves
// exactly like a new one, so evicting it never lets a host exceed its rate.
// Must be called with mu held.
func (l *HostLimiter) sweep(now time.Time) {
	for host, lim := range l.limiters {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, host)
		}
	}
	l.sweepAt = max(MinSweepSize, 2*len(l.limiters))
}
