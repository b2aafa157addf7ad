package crawl

// TruncateURL shortens a URL for single-line progress display. It keeps the
// end of the URL, where the exhibitor id lives.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for the "..." prefix.
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
