package crawl

import (
	"context"
	"fmt"

	"github.com/sutaryash32/expodex"
)

// ListingReadySelector matches the elements whose presence signals that a
// listing page has rendered its exhibitor list.
const ListingReadySelector = ".exhibitor-list, .exhibitor-item, [id*='exhibitor']"

// Ensure Collector implements expodex.Collector at compile time.
var _ expodex.Collector = (*Collector)(nil)

// Collector discovers detail-page links by walking the paginated listing
// pages 1..TotalPages in order.
type Collector struct {
	Fetcher  expodex.Fetcher
	Selector expodex.LinkSelector
	Limiter  expodex.Limiter // optional pacing between listing fetches

	// BaseURL is the exhibitor gallery URL without pagination parameters.
	BaseURL string
	// TotalPages is the known listing page count, 1-indexed inclusive.
	TotalPages int

	// OnProgress, if set, receives one event per listing page.
	OnProgress ProgressFunc
}

// Collect fetches every listing page in turn, extracts candidate links and
// returns them deduplicated in discovery order: listing-page order, then
// in-page order. A page that fails to fetch is reported and skipped; a page
// contributing zero links is not an error. Collect fails only on invalid
// configuration or a canceled context.
func (c *Collector) Collect(ctx context.Context) (expodex.LinkSet, error) {
	if c.BaseURL == "" {
		return nil, expodex.Errorf(expodex.EINVALID, "collector base URL required")
	}
	if c.TotalPages <= 0 {
		return nil, expodex.Errorf(expodex.EINVALID, "collector total pages must be positive, got %d", c.TotalPages)
	}

	c.emit(ProgressEvent{Type: ProgressStarted, Total: c.TotalPages})

	var all []string
	for page := 1; page <= c.TotalPages; page++ {
		if c.Limiter != nil && page > 1 {
			if err := c.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		pageURL := c.listingURL(page)
		links, err := c.collectPage(ctx, pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.emit(ProgressEvent{Type: ProgressFailed, Completed: page, Total: c.TotalPages, URL: pageURL, Error: err})
			continue
		}

		all = append(all, links...)
		c.emit(ProgressEvent{Type: ProgressCompleted, Completed: page, Total: c.TotalPages, URL: pageURL})
	}

	// Second de-dup pass guarantees global uniqueness across pages.
	links := expodex.NewLinkSet(all...)

	c.emit(ProgressEvent{Type: ProgressFinished, Completed: c.TotalPages, Total: c.TotalPages})
	return links, nil
}

// collectPage fetches one listing page and extracts its candidate links.
func (c *Collector) collectPage(ctx context.Context, pageURL string) ([]string, error) {
	html, err := c.Fetcher.Fetch(ctx, pageURL, ListingReadySelector)
	if err != nil {
		return nil, err
	}
	return c.Selector.ExtractLinks(html, pageURL)
}

// listingURL builds the URL for a 1-indexed listing page.
func (c *Collector) listingURL(page int) string {
	return fmt.Sprintf("%s?featured=false&page=%d", c.BaseURL, page)
}

func (c *Collector) emit(event ProgressEvent) {
	if c.OnProgress != nil {
		c.OnProgress(event)
	}
}
