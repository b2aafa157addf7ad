package mock

import (
	"github.com/sutaryash32/expodex"
)

var _ expodex.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of expodex.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, pageURL string) ([]string, error)
}

func (s *LinkSelector) ExtractLinks(html string, pageURL string) ([]string, error) {
	return s.ExtractLinksFn(html, pageURL)
}
