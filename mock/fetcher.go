package mock

import (
	"context"

	"github.com/sutaryash32/expodex"
)

var _ expodex.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of expodex.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, waitSelector string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, waitSelector string) (string, error) {
	return f.FetchFn(ctx, url, waitSelector)
}

func (f *Fetcher) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

var _ expodex.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of expodex.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn != nil {
		return l.WaitFn(ctx)
	}
	return nil
}
