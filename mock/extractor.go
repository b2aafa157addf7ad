package mock

import "github.com/sutaryash32/expodex"

var _ expodex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of expodex.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) expodex.Exhibitor
}

func (e *Extractor) Extract(html string, sourceURL string) expodex.Exhibitor {
	return e.ExtractFn(html, sourceURL)
}
