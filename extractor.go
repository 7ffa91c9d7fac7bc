package docgrab

// Extractor turns one fetched page into an extracted Page.
// Implementations decide how to locate the main content region: a CSS
// selector, automatic boilerplate removal, or any other strategy.
type Extractor interface {
	// Extract locates the main content of the page, preserves code blocks
	// and tables through text flattening, and returns the cleaned result.
	// The pageURL is used to resolve relative links and as the fallback
	// title. Returns an ENOTFOUND error when the page has no content
	// region; callers treat that as a skip, not a failure.
	Extract(html, pageURL string) (*Page, error)
}

// LinkExtractor discovers outgoing links from a fetched page.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the absolute URLs it links to,
	// in document order, deduplicated, with fragments stripped. Non-HTTP
	// schemes (mailto:, javascript:, ...) are omitted. Scope filtering is
	// the caller's concern.
	ExtractLinks(html, baseURL string) ([]string, error)
}
