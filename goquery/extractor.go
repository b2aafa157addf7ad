package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sutaryash32/expodex"
)

// Ensure Extractor implements expodex.Extractor at compile time.
var _ expodex.Extractor = (*Extractor)(nil)

// Selector strategies per field. Exhibitor pages are inconsistent, so each
// field tries an ordered list of independent best-effort strategies; order
// is the tie-break when several would match.
var (
	nameStrategies    = []string{"h1", ".exhibitor-title", `[itemprop="name"]`}
	boothStrategies   = []string{".booth-number", ".booth-location", `[class*="booth"]`}
	websiteStrategies = []string{`a[href*="http"]`, ".website-link", `[itemprop="url"]`, `a[target="_blank"]`}
	contactStrategies = []string{".contact-info", ".contact-details", `[class*="contact"]`, ".address", ".email"}
)

// contactDelimiter joins the contact fragments collected across strategies.
const contactDelimiter = " | "

// Extractor implements expodex.Extractor using CSS selector strategies.
type Extractor struct {
	origin *url.URL
}

// NewExtractor creates an Extractor. Relative website hrefs are resolved
// against origin rather than the page URL, matching the site's
// root-relative website anchors.
func NewExtractor(origin string) (*Extractor, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, expodex.Errorf(expodex.EINVALID, "invalid site origin: %v", err)
	}
	return &Extractor{origin: u}, nil
}

// Extract applies the per-field strategies to a detail page's HTML.
// It never fails: fields with no hit get the NA marker, and unparsable
// HTML yields an all-NA record with the source URL set.
func (e *Extractor) Extract(html, sourceURL string) expodex.Exhibitor {
	record := expodex.Degraded(sourceURL)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return record
	}

	record.Name = firstText(doc, nameStrategies)
	record.Booth = firstText(doc, boothStrategies)
	record.Website = e.website(doc)
	record.Contact = contactInfo(doc)

	return record
}

// firstText returns the trimmed text of the first element matched by the
// first strategy yielding non-empty text, or NA.
func firstText(doc *goquery.Document, strategies []string) string {
	for _, strategy := range strategies {
		text := strings.TrimSpace(doc.Find(strategy).First().Text())
		if text != "" {
			return text
		}
	}
	return expodex.NA
}

// website returns the first present href across the website strategies,
// absolutized against the configured origin when relative, or NA.
func (e *Extractor) website(doc *goquery.Document) string {
	for _, strategy := range websiteStrategies {
		sel := doc.Find(strategy).First()
		if sel.Length() == 0 {
			continue
		}
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			continue
		}
		if !strings.HasPrefix(href, "http") {
			if ref, err := url.Parse(href); err == nil {
				href = e.origin.ResolveReference(ref).String()
			}
		}
		return href
	}
	return expodex.NA
}

// contactInfo concatenates every non-empty trimmed text matched by any
// contact strategy. Unlike the other fields, all strategies contribute all
// of their matches; overlapping selectors may repeat a fragment, which is
// kept.
func contactInfo(doc *goquery.Document) string {
	var parts []string
	for _, strategy := range contactStrategies {
		doc.Find(strategy).Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				parts = append(parts, text)
			}
		})
	}
	if len(parts) == 0 {
		return expodex.NA
	}
	return strings.Join(parts, contactDelimiter)
}
