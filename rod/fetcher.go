package rod

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/sutaryash32/expodex"
)

// Default timings match the target site's behavior: listing and detail pages
// render their content with JavaScript well within these windows.
const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultRenderDelay  = 2 * time.Second
)

// Ensure Fetcher implements expodex.Fetcher at compile time.
var _ expodex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// The underlying browser is recycled periodically so that multi-hour crawls
// do not accumulate Chrome's memory growth.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	timeout      time.Duration
	renderDelay  time.Duration
	headless     bool
	recycleAfter int64
	closed       atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds a single Fetch call, navigation and readiness wait
// included. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRenderDelay sets the settle time between the readiness selector
// appearing and the HTML snapshot. Defaults to DefaultRenderDelay.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// WithHeadless controls whether the browser runs headless. Defaults to true;
// turning it off is useful when debugging selector strategies.
func WithHeadless(headless bool) Option {
	return func(f *Fetcher) {
		f.headless = headless
	}
}

// WithRecycleAfter sets how many pages the browser serves before it is
// restarted. Defaults to DefaultMaxPages.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.recycleAfter = n
	}
}

// NewFetcher creates a new Fetcher that launches a Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		renderDelay:  DefaultRenderDelay,
		headless:     true,
		recycleAfter: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.headless, WithMaxPages(f.recycleAfter))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL, waits for waitSelector to appear plus the
// render delay, and returns the rendered HTML. An empty waitSelector skips
// the readiness wait.
func (f *Fetcher) Fetch(ctx context.Context, url string, waitSelector string) (string, error) {
	if f.closed.Load() {
		return "", expodex.Errorf(expodex.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fetchError(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fetchError(ctx, url, err)
	}

	// Block until the page's dynamic content has been inserted.
	if waitSelector != "" {
		if _, err := page.Element(waitSelector); err != nil {
			return "", fetchError(ctx, url, err)
		}
	}

	if f.renderDelay > 0 {
		select {
		case <-time.After(f.renderDelay):
		case <-ctx.Done():
			return "", fetchError(ctx, url, ctx.Err())
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchError(ctx, url, err)
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources, including the launched Chrome process.
// Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// fetchError maps a failed page operation to a domain error. A deadline blown
// inside the fetch window means the site was too slow, which callers treat as
// a transient failure rather than a caller mistake.
func fetchError(ctx context.Context, url string, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return expodex.Errorf(expodex.EUNAVAILABLE, "timeout loading page: %s", url)
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return err
	}
}
