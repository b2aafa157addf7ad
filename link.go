package expodex

import (
	"net/url"
	"strings"
)

// NormalizeLink resolves href against the URL of the page it was found on
// and canonicalizes the result: the fragment is dropped and a trailing
// slash is trimmed from the path, so two spellings of the same detail page
// compare equal by plain string equality. Returns false if href is empty
// or cannot be parsed.
func NormalizeLink(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	if len(resolved.Path) > 1 {
		resolved.Path = strings.TrimSuffix(resolved.Path, "/")
	}
	return resolved.String(), true
}

// LinkSet is the ordered collection of discovered detail-page links.
// Order is discovery order: listing-page order, then in-page order.
// Construct with NewLinkSet to guarantee first-occurrence deduplication.
type LinkSet []string

// NewLinkSet builds a LinkSet from urls, dropping empty entries and
// duplicates while preserving the order of first occurrence.
func NewLinkSet(urls ...string) LinkSet {
	seen := make(map[string]bool, len(urls))
	links := make(LinkSet, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		links = append(links, u)
	}
	return links
}

// Pending returns the links not yet represented in processed, preserving
// discovery order. This is the work remaining for a resumed run.
func (s LinkSet) Pending(processed map[string]bool) LinkSet {
	pending := make(LinkSet, 0, len(s))
	for _, u := range s {
		if !processed[u] {
			pending = append(pending, u)
		}
	}
	return pending
}

// Contains reports whether url is a member of the set.
func (s LinkSet) Contains(url string) bool {
	for _, u := range s {
		if u == url {
			return true
		}
	}
	return false
}
