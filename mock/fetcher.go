package mock

import (
	"context"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagebrief.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagebrief.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagebrief.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

var _ pagebrief.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of pagebrief.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
