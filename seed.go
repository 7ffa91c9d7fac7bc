package docgrab

import (
	"net/url"
	"time"
)

// DefaultSelector is the content-region selector used when none is configured.
const DefaultSelector = "main"

// Seed is the immutable configuration for one crawl run.
//
// Exactly one of two traversal modes applies: when Links is non-empty the
// run operates in closed-list mode (each link is resolved against RootURL
// and no further links are discovered); otherwise the run operates in
// open-crawl mode, seeded with RootURL and discovering same-site links as
// pages are fetched.
type Seed struct {
	// RootURL is the crawl root in open-crawl mode and the base URL that
	// relative Links resolve against in closed-list mode.
	RootURL string

	// Links, when non-empty, selects closed-list mode. Order is preserved.
	Links []string

	// Selector identifies the main-content region on each page.
	// Defaults to DefaultSelector if empty.
	Selector string

	// MaxPages caps the number of successfully extracted pages.
	// Zero means unbounded.
	MaxPages int

	// OutputPath is where the assembled document is written.
	OutputPath string

	// Delay is the polite pause between fetches. Zero means no pause.
	Delay time.Duration
}

// Validate returns an EINVALID error if the seed cannot start a run.
func (s *Seed) Validate() error {
	if s.RootURL == "" {
		return Errorf(EINVALID, "seed root URL required")
	}
	if _, err := url.Parse(s.RootURL); err != nil {
		return Errorf(EINVALID, "invalid seed root URL %q: %v", s.RootURL, err)
	}
	if s.OutputPath == "" {
		return Errorf(EINVALID, "output path required")
	}
	if s.MaxPages < 0 {
		return Errorf(EINVALID, "page budget must not be negative")
	}
	return nil
}

// ClosedList reports whether the run is restricted to the configured links.
func (s *Seed) ClosedList() bool {
	return len(s.Links) > 0
}

// SourceDescription describes the seed for the output document header.
func (s *Seed) SourceDescription() string {
	if s.ClosedList() {
		return "explicit link list"
	}
	return s.RootURL
}

// SeedURLs returns the initial frontier contents in order: the resolved
// link list in closed-list mode, or the single root URL otherwise.
func (s *Seed) SeedURLs() ([]string, error) {
	if !s.ClosedList() {
		return []string{s.RootURL}, nil
	}

	base, err := url.Parse(s.RootURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid seed root URL %q: %v", s.RootURL, err)
	}

	urls := make([]string, 0, len(s.Links))
	for _, link := range s.Links {
		ref, err := url.Parse(link)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid seed link %q: %v", link, err)
		}
		urls = append(urls, base.ResolveReference(ref).String())
	}
	return urls, nil
}
