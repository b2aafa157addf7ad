// Package goquery provides CSS-selector-based link collection and field
// extraction for exhibitor pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sutaryash32/expodex"
)

// DetailPathMarker is the path fragment every detail-page href must contain.
const DetailPathMarker = "exhibitor-details"

// linkStrategies are the ordered selector strategies for finding detail-page
// anchors on a listing page. Every strategy contributes candidates; order is
// the tie-break that fixes discovery order.
var linkStrategies = []string{
	`a[href*="exhibitor-details"]`,
	`.exhibitor-name a`,
	`.exhibitor-link`,
	`[data-exhibitor-id] a`,
}

// Ensure LinkSelector implements expodex.LinkSelector at compile time.
var _ expodex.LinkSelector = (*LinkSelector)(nil)

// LinkSelector implements expodex.LinkSelector using the listing-page
// selector strategies.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// ExtractLinks parses a listing page and returns its detail-page links,
// resolved against the listing page's own URL, normalized, and deduplicated
// within the page in first-occurrence order.
func (s *LinkSelector) ExtractLinks(html, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, expodex.Errorf(expodex.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, expodex.Errorf(expodex.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	for _, strategy := range linkStrategies {
		doc.Find(strategy).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || !strings.Contains(href, DetailPathMarker) {
				return
			}

			resolved, ok := expodex.NormalizeLink(base, href)
			if !ok {
				return
			}

			if seen[resolved] {
				return
			}
			seen[resolved] = true
			links = append(links, resolved)
		})
	}

	return links, nil
}
