package expodex

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits until an element matching
	// waitSelector is present in the DOM (the page's readiness condition),
	// and returns the rendered HTML. An empty waitSelector waits for page
	// load only. Returns EUNAVAILABLE on navigation error or when the
	// readiness condition is not met within the configured timeout.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url, waitSelector string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Limiter paces requests to the target site.
type Limiter interface {
	// Wait blocks until the politeness delay allows the next request.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
