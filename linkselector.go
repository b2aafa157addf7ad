package expodex

// LinkSelector extracts candidate detail-page links from a listing page.
type LinkSelector interface {
	// ExtractLinks parses the listing page's HTML and returns detail-page
	// links resolved against pageURL, normalized, and deduplicated within
	// the page in first-occurrence order.
	ExtractLinks(html, pageURL string) ([]string, error)
}
