// Package trafilatura provides a selector-free extraction strategy that
// locates the main content region automatically.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docgrab"
	docgoquery "github.com/fwojciec/docgrab/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docgrab.Extractor at compile time.
var _ docgrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to locate the main content of a page
// without a CSS selector, then flattens it through the same
// code-and-table-preserving pipeline as the selector-based extractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes one fetched page. It returns an ENOTFOUND error when
// trafilatura cannot locate a content region; callers treat that as a skip.
func (e *Extractor) Extract(rawHTML, pageURL string) (*docgrab.Page, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docgrab.Errorf(docgrab.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    base,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.ENOTFOUND, "no content located at %s: %v", pageURL, err)
	}
	if result.ContentNode == nil {
		return nil, docgrab.Errorf(docgrab.ENOTFOUND, "no content located at %s", pageURL)
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "failed to parse extracted content: %v", err)
	}
	region := doc.Selection

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = docgoquery.FirstHeading(region)
	}
	if title == "" {
		title = pageURL
	}

	return &docgrab.Page{
		URL:   pageURL,
		Title: title,
		Body:  docgoquery.Flatten(region, base),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
