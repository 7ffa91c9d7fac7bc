// Package goquery provides selector-based implementations of page
// extraction and link discovery on top of PuerkitoBio/goquery.
package goquery

import (
	"fmt"
	stdhtml "html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docgrab"
)

// Ensure Extractor implements docgrab.Extractor at compile time.
var _ docgrab.Extractor = (*Extractor)(nil)

// Extractor locates the main content region with a CSS selector and
// flattens it to cleaned plain text, preserving code blocks and tables.
type Extractor struct {
	selector string
}

// NewExtractor creates an Extractor for the given content-region selector.
// An empty selector falls back to docgrab.DefaultSelector.
func NewExtractor(selector string) *Extractor {
	if selector == "" {
		selector = docgrab.DefaultSelector
	}
	return &Extractor{selector: selector}
}

// Extract processes one fetched page. It returns an ENOTFOUND error when
// no element matches the content selector; callers treat that as a skip.
func (e *Extractor) Extract(rawHTML, pageURL string) (*docgrab.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	region := doc.Find(e.selector).First()
	if region.Length() == 0 {
		return nil, docgrab.Errorf(docgrab.ENOTFOUND, "no %q region at %s", e.selector, pageURL)
	}

	title := FirstHeading(region)
	if title == "" {
		title = pageURL
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	return &docgrab.Page{
		URL:   pageURL,
		Title: title,
		Body:  Flatten(region, base),
	}, nil
}

// FirstHeading returns the trimmed text of the first heading element in
// the region, or "" if the region has no heading.
func FirstHeading(region *goquery.Selection) string {
	return strings.TrimSpace(region.Find("h1, h2, h3").First().Text())
}

// Flatten converts a content region to cleaned plain text. Anchors are
// rewritten to "text (absolute URL)", code blocks and tables are swapped
// for placeholder tokens, script and style elements are dropped, the
// remaining DOM is flattened and normalized, and the preserved blocks are
// re-inlined. The region is mutated in place.
func Flatten(region *goquery.Selection, base *url.URL) string {
	rewriteAnchors(region, base)
	blocks := preserveBlocks(region)
	region.Find("script, style").Remove()
	text := docgrab.CleanText(region.Text())
	return blocks.restore(text)
}

// rewriteAnchors replaces each anchor with its text followed by the
// absolute target URL, so links survive text flattening.
func rewriteAnchors(region *goquery.Selection, base *url.URL) {
	if base == nil {
		return
	}
	region.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		text := fmt.Sprintf("%s (%s)", strings.TrimSpace(a.Text()), resolved)
		a.ReplaceWithHtml(stdhtml.EscapeString(text))
	})
}
