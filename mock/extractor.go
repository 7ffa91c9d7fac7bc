package mock

import "github.com/fwojciec/docgrab"

var _ docgrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docgrab.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*docgrab.Page, error)
}

func (e *Extractor) Extract(html, pageURL string) (*docgrab.Page, error) {
	return e.ExtractFn(html, pageURL)
}

var _ docgrab.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docgrab.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL string) ([]string, error)
}

func (l *LinkExtractor) ExtractLinks(html, baseURL string) ([]string, error) {
	return l.ExtractLinksFn(html, baseURL)
}
